// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package edc implements message delivery to the receiving partner's
// dataspace connector endpoint.
package edc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/errors"
)

const receivePath = "/api/qualitynotifications/receive"

// DefTimeout bounds a single delivery attempt.
const DefTimeout = 10 * time.Second

var (
	errMissingEndpoint = errors.NewServiceError("message carries no connector endpoint")
	errDelivery        = errors.NewServiceError("failed to deliver notification message")
)

var _ notifications.Transport = (*client)(nil)

// Config holds the connector client options.
type Config struct {
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type client struct {
	http *http.Client
}

// New returns a Transport delivering messages over HTTP to the
// counterparty connector.
func New(cfg Config) notifications.Transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefTimeout
	}

	return &client{
		http: &http.Client{Timeout: timeout},
	}
}

// notificationEnvelope is the wire format agreed between connectors. The
// header routes the message, the content carries the quality finding.
type notificationEnvelope struct {
	Header  envelopeHeader  `json:"header"`
	Content envelopeContent `json:"content"`
}

type envelopeHeader struct {
	NotificationID string `json:"notificationId"`
	SenderBPN      string `json:"senderBPN"`
	RecipientBPN   string `json:"recipientBPN"`
	Severity       string `json:"severity"`
	Status         string `json:"status"`
	TargetDate     string `json:"targetDate,omitempty"`
	MessageID      string `json:"messageId"`
}

type envelopeContent struct {
	Information         string   `json:"information"`
	ListOfAffectedItems []string `json:"listOfAffectedItems"`
}

func (c *client) Deliver(ctx context.Context, msg notifications.Message) error {
	if msg.EdcURL == "" {
		return errMissingEndpoint
	}

	env := notificationEnvelope{
		Header: envelopeHeader{
			NotificationID: msg.EdcNotificationID,
			SenderBPN:      msg.SenderBpn,
			RecipientBPN:   msg.ReceiverBpn,
			Severity:       msg.Severity.String(),
			Status:         msg.Status.String(),
			MessageID:      msg.ID,
		},
		Content: envelopeContent{
			Information:         msg.Description,
			ListOfAffectedItems: msg.AffectedPartIDs,
		},
	}
	if !msg.TargetDate.IsZero() {
		env.Header.TargetDate = msg.TargetDate.Format(time.RFC3339)
	}

	body, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(errDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, msg.EdcURL+receivePath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(errDelivery, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(errDelivery, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrap(errDelivery, fmt.Errorf("connector returned status %d", res.StatusCode))
	}

	return nil
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"time"

	api "github.com/partlane/qnotify/api/http"
	apiutil "github.com/partlane/qnotify/api/http/util"
	"github.com/partlane/qnotify/notifications"
)

type startNotificationReq struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	AffectedPartIDs []string  `json:"affected_part_ids"`
	ReceiverBpn     string    `json:"receiver_bpn"`
	Severity        string    `json:"severity"`
	Type            string    `json:"type"`
	TargetDate      time.Time `json:"target_date,omitempty"`
}

func (req startNotificationReq) validate() error {
	if req.Title == "" {
		return apiutil.ErrMissingTitle
	}
	if req.Description == "" {
		return apiutil.ErrMissingDescription
	}
	if len(req.AffectedPartIDs) == 0 {
		return apiutil.ErrMissingPartIDs
	}
	if req.ReceiverBpn == "" {
		return apiutil.ErrMissingReceiverBpn
	}

	return nil
}

type viewNotificationReq struct {
	id string
}

func (req viewNotificationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type viewNotificationByReferenceReq struct {
	edcNotificationID string
}

func (req viewNotificationByReferenceReq) validate() error {
	if req.edcNotificationID == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.edcNotificationID)
}

type listNotificationsReq struct {
	pm notifications.PageMetadata
}

func (req listNotificationsReq) validate() error {
	if req.pm.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}

	return nil
}

type approveNotificationReq struct {
	id string
}

func (req approveNotificationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type cancelNotificationReq struct {
	id string
}

func (req cancelNotificationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type updateStatusReq struct {
	id     string
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (req updateStatusReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if req.Status == "" {
		return apiutil.ErrMissingStatus
	}
	if req.Reason == "" {
		return apiutil.ErrMissingReason
	}

	return nil
}

type editNotificationReq struct {
	id              string
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	AffectedPartIDs []string   `json:"affected_part_ids,omitempty"`
	ReceiverBpn     *string    `json:"receiver_bpn,omitempty"`
	Severity        *string    `json:"severity,omitempty"`
	TargetDate      *time.Time `json:"target_date,omitempty"`
}

func (req editNotificationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if req.Title == "" {
		return apiutil.ErrMissingTitle
	}

	return nil
}

type distinctFilterValuesReq struct {
	fieldName string
	startWith string
	size      int64
	side      notifications.Side
}

func (req distinctFilterValuesReq) validate() error {
	if req.fieldName == "" {
		return apiutil.ErrMissingFieldName
	}

	return nil
}

type receiveMessageReq struct {
	ID                  string    `json:"id,omitempty"`
	SenderBpn           string    `json:"sender_bpn"`
	ReceiverBpn         string    `json:"receiver_bpn"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	Severity            string    `json:"severity"`
	AffectedPartIDs     []string  `json:"affected_part_ids,omitempty"`
	EdcNotificationID   string    `json:"edc_notification_id"`
	ContractAgreementID string    `json:"contract_agreement_id,omitempty"`
	TargetDate          time.Time `json:"target_date,omitempty"`
}

func (req receiveMessageReq) validate() error {
	if req.SenderBpn == "" || req.ReceiverBpn == "" {
		return apiutil.ErrMissingReceiverBpn
	}
	if req.EdcNotificationID == "" {
		return apiutil.ErrMissingID
	}
	if req.Status == "" {
		return apiutil.ErrMissingStatus
	}

	return nil
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package notifications implements the quality notification aggregate and
// its cross-partner lifecycle.
package notifications

import (
	"context"
	"time"

	"github.com/partlane/qnotify/assets"
	"github.com/partlane/qnotify/bpn"
	"github.com/partlane/qnotify/pkg/errors"
)

var (
	// ErrNotFound indicates the requested notification does not exist.
	ErrNotFound = errors.NewNotFoundError("notification not found")

	// ErrSameBpn indicates sender and receiver partner ids are equal.
	ErrSameBpn = errors.NewRequestError("sender and receiver bpn must not be equal")

	// ErrEmptyHistory indicates the notification has no messages.
	ErrEmptyHistory = errors.NewConflictError("notification has no messages")

	// ErrInvalidTransition indicates the requested status cannot be reached
	// from any status present in the message history.
	ErrInvalidTransition = errors.NewRequestError("no transition to requested status")

	// ErrSendNotification indicates the hand-off to the partner connector failed.
	ErrSendNotification = errors.NewServiceError("failed to send notification to partner")
)

// Message is one immutable history entry recording a status held by a
// specific sender/receiver pair at a point in time. State changes are
// represented by appending new messages, never by mutating prior ones.
type Message struct {
	ID                  string    `json:"id"`
	SenderBpn           string    `json:"sender_bpn"`
	ReceiverBpn         string    `json:"receiver_bpn"`
	Description         string    `json:"description,omitempty"`
	Status              Status    `json:"status"`
	Severity            Severity  `json:"severity"`
	AffectedPartIDs     []string  `json:"affected_part_ids,omitempty"`
	EdcNotificationID   string    `json:"edc_notification_id,omitempty"`
	ContractAgreementID string    `json:"contract_agreement_id,omitempty"`
	EdcURL              string    `json:"edc_url,omitempty"`
	TargetDate          time.Time `json:"target_date,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// SwitchSenderAndReceiver returns a copy of the message with the direction
// reversed, modeling the counterparty replying.
func (m Message) SwitchSenderAndReceiver() Message {
	m.SenderBpn, m.ReceiverBpn = m.ReceiverBpn, m.SenderBpn
	return m
}

// Notification is the aggregate root holding the full cross-partner
// history of one quality alert or investigation.
type Notification struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Bpn             string    `json:"bpn"`
	Type            Type      `json:"type"`
	Side            Side      `json:"side"`
	Severity        Severity  `json:"severity"`
	TargetDate      time.Time `json:"target_date,omitempty"`
	AffectedPartIDs []string  `json:"affected_part_ids,omitempty"`
	Messages        []Message `json:"messages,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// AddMessage appends a message to the history. It fails when sender and
// receiver are equal, and the history is left untouched in that case.
func (n *Notification) AddMessage(msg Message) error {
	if msg.SenderBpn == msg.ReceiverBpn {
		return ErrSameBpn
	}
	n.Messages = append(n.Messages, msg)
	return nil
}

// AddMessages appends the given messages as one unit. When any message
// is invalid nothing is appended.
func (n *Notification) AddMessages(msgs []Message) error {
	for _, msg := range msgs {
		if msg.SenderBpn == msg.ReceiverBpn {
			return ErrSameBpn
		}
	}
	n.Messages = append(n.Messages, msgs...)
	return nil
}

// ClearMessages empties the history. Only re-drafting (edit) may do this.
func (n *Notification) ClearMessages() {
	n.Messages = nil
}

// Status derives the externally visible status from the most recently
// appended message.
func (n *Notification) Status() (Status, error) {
	if len(n.Messages) == 0 {
		return Status(0), ErrEmptyHistory
	}
	return n.Messages[len(n.Messages)-1].Status, nil
}

// MessageIDs returns the ids of all messages in history order.
func (n *Notification) MessageIDs() []string {
	ids := make([]string, 0, len(n.Messages))
	for _, msg := range n.Messages {
		ids = append(ids, msg.ID)
	}
	return ids
}

// MessagesInStatus returns the messages currently holding one of the
// given statuses, in history order.
func (n *Notification) MessagesInStatus(statuses ...Status) []Message {
	var out []Message
	for _, msg := range n.Messages {
		for _, s := range statuses {
			if msg.Status == s {
				out = append(out, msg)
				break
			}
		}
	}
	return out
}

// LeafMessages returns the latest message per sender/receiver direction.
func (n *Notification) LeafMessages() []Message {
	latest := make(map[string]int)
	for i, msg := range n.Messages {
		latest[msg.SenderBpn+"/"+msg.ReceiverBpn] = i
	}

	out := make([]Message, 0, len(latest))
	for i, msg := range n.Messages {
		if latest[msg.SenderBpn+"/"+msg.ReceiverBpn] == i {
			out = append(out, msg)
		}
	}
	return out
}

// PageMetadata contains the page and filter parameters of a listing request.
type PageMetadata struct {
	Offset   uint64   `json:"offset"`
	Limit    uint64   `json:"limit"`
	Status   Status   `json:"status,omitempty"`
	Side     Side     `json:"side,omitempty"`
	Severity Severity `json:"severity,omitempty"`
	Type     Type     `json:"type,omitempty"`
	Bpn      string   `json:"bpn,omitempty"`
}

// Page contains a page of notifications together with paging metadata.
type Page struct {
	PageMetadata
	Total         uint64         `json:"total"`
	Notifications []Notification `json:"notifications"`
}

// StartNotification is the request to draft a new notification.
type StartNotification struct {
	Title           string
	Description     string
	AffectedPartIDs []string
	ReceiverBpn     string
	Severity        Severity
	Type            Type
	TargetDate      time.Time
}

// EditNotification is the request to re-draft a not-yet-sent notification.
// Nil fields keep their current values, title is always applied.
type EditNotification struct {
	ID              string
	Title           string
	Description     *string
	AffectedPartIDs []string
	ReceiverBpn     *string
	Severity        *Severity
	TargetDate      *time.Time
}

// Repository specifies the persistence API for notifications.
type Repository interface {
	// Save persists a new notification and its messages, returning its id.
	Save(ctx context.Context, n Notification) (string, error)

	// RetrieveByID returns the notification with the given id.
	RetrieveByID(ctx context.Context, id string) (Notification, error)

	// RetrieveByEdcNotificationID returns the notification owning a message
	// with the given remote reference id.
	RetrieveByEdcNotificationID(ctx context.Context, edcNotificationID string) (Notification, error)

	// RetrieveAll returns a page of notifications matching the filter.
	RetrieveAll(ctx context.Context, pm PageMetadata) (Page, error)

	// Update persists the aggregate and its message set as a single unit.
	Update(ctx context.Context, n Notification) error

	// DeleteMessages removes the messages with the given ids.
	DeleteMessages(ctx context.Context, ids []string) error

	// DistinctFieldValues returns distinct values of the given free-text
	// field, optionally prefix-filtered, capped at limit when positive.
	DistinctFieldValues(ctx context.Context, field, startsWith string, limit int64, side Side) ([]string, error)
}

// Transport delivers a notification message to the receiving partner's
// dataspace connector. Implementations bound each delivery by a timeout.
type Transport interface {
	Deliver(ctx context.Context, msg Message) error
}

// Service specifies the notification orchestration API.
type Service interface {
	// Start drafts a new notification and returns its id. No hand-off to
	// the partner happens at this step.
	Start(ctx context.Context, sn StartNotification) (string, error)

	// Find returns the notification with the given id.
	Find(ctx context.Context, id string) (Notification, error)

	// FindByEdcNotificationID returns the notification referenced by the
	// given remote reference id.
	FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (Notification, error)

	// List returns a page of notifications matching the filter.
	List(ctx context.Context, pm PageMetadata) (Page, error)

	// Approve advances all CREATED messages to SENT and hands them to the
	// partner connector. On hand-off failure nothing is persisted.
	Approve(ctx context.Context, id string) error

	// Cancel appends CANCELED mirrors of the current leaf messages and
	// hands them off. On hand-off failure nothing is persisted.
	Cancel(ctx context.Context, id string) error

	// UpdateStatusTransition advances every message holding the required
	// predecessor status to the requested status, with the direction
	// swapped and the reason as description.
	UpdateStatusTransition(ctx context.Context, id string, status Status, reason string) error

	// Edit re-drafts a not-yet-sent notification, replacing its message set.
	Edit(ctx context.Context, en EditNotification) error

	// DistinctFilterValues returns the distinct values of a filterable field.
	// Closed enumerations return their literal members.
	DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side Side) ([]string, error)

	// HandleReceive ingests a message arriving from a counterparty.
	HandleReceive(ctx context.Context, msg Message) error
}

// InitialMessages builds the CREATED message set of a draft, one message
// per affected asset. Each message routes through the part owner's
// connector endpoint when one is mapped, the receiver's otherwise.
func InitialMessages(affected []assets.Asset, ownBpn, receiverBpn, edcURL string, endpoints []bpn.EdcMapping, sn StartNotification, newID func() (string, error)) ([]Message, error) {
	byOwner := make(map[string]string, len(endpoints))
	for _, mapping := range endpoints {
		byOwner[mapping.Bpn] = mapping.URL
	}

	now := time.Now().UTC()
	msgs := make([]Message, 0, len(affected))
	for _, asset := range affected {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		refID, err := newID()
		if err != nil {
			return nil, err
		}
		url := edcURL
		if owned, ok := byOwner[asset.ManufacturerID]; ok {
			url = owned
		}
		msgs = append(msgs, Message{
			ID:                id,
			SenderBpn:         ownBpn,
			ReceiverBpn:       receiverBpn,
			Description:       sn.Description,
			Status:            CreatedStatus,
			Severity:          sn.Severity,
			AffectedPartIDs:   []string{asset.ID},
			EdcNotificationID: refID,
			EdcURL:            url,
			TargetDate:        sn.TargetDate,
			CreatedAt:         now,
		})
	}
	return msgs, nil
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications

import (
	"encoding/json"
	"strings"

	svcerr "github.com/partlane/qnotify/pkg/errors/service"
)

// Status represents the workflow state of a notification message.
type Status uint8

// Possible Status values, in workflow order.
const (
	CreatedStatus Status = iota
	SentStatus
	ReceivedStatus
	AcknowledgedStatus
	AcceptedStatus
	DeclinedStatus
	CanceledStatus
	ClosedStatus

	// AllStatus is used for querying purposes to list notifications
	// irrespective of their status. It is never stored and must stay
	// the largest value in this enumeration.
	AllStatus
)

// String representation of the possible status values.
const (
	created      = "CREATED"
	sent         = "SENT"
	received     = "RECEIVED"
	acknowledged = "ACKNOWLEDGED"
	accepted     = "ACCEPTED"
	declined     = "DECLINED"
	canceled     = "CANCELED"
	closed       = "CLOSED"
	allStatus    = "ALL"
	unknown      = "UNKNOWN"
)

// String converts notification status to string literal.
func (s Status) String() string {
	switch s {
	case CreatedStatus:
		return created
	case SentStatus:
		return sent
	case ReceivedStatus:
		return received
	case AcknowledgedStatus:
		return acknowledged
	case AcceptedStatus:
		return accepted
	case DeclinedStatus:
		return declined
	case CanceledStatus:
		return canceled
	case ClosedStatus:
		return closed
	case AllStatus:
		return allStatus
	default:
		return unknown
	}
}

// ToStatus converts string value to a valid notification status.
func ToStatus(status string) (Status, error) {
	switch status {
	case created:
		return CreatedStatus, nil
	case sent:
		return SentStatus, nil
	case received:
		return ReceivedStatus, nil
	case acknowledged:
		return AcknowledgedStatus, nil
	case accepted:
		return AcceptedStatus, nil
	case declined:
		return DeclinedStatus, nil
	case canceled:
		return CanceledStatus, nil
	case closed:
		return ClosedStatus, nil
	case "", allStatus:
		return AllStatus, nil
	}
	return Status(0), svcerr.ErrInvalidStatus
}

// Terminal reports whether no further transition is allowed from the status.
func (s Status) Terminal() bool {
	return s == CanceledStatus || s == ClosedStatus
}

// StatusValues returns the string literals of all storable status values.
func StatusValues() []string {
	return []string{created, sent, received, acknowledged, accepted, declined, canceled, closed}
}

// Custom Marshaller for Status.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Custom Unmarshaler for Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToStatus(str)
	*s = val
	return err
}

// Transitions maps a requested target status to the set of statuses a
// message must currently hold to be advanced by that transition. The
// table is partner-workflow-specific configuration, injected into the
// service rather than hard-coded.
type Transitions map[Status][]Status

// DefaultTransitions returns the transition table of the standard
// two-party quality notification workflow.
func DefaultTransitions() Transitions {
	return Transitions{
		SentStatus:         {CreatedStatus},
		ReceivedStatus:     {SentStatus},
		AcknowledgedStatus: {ReceivedStatus},
		AcceptedStatus:     {AcknowledgedStatus},
		DeclinedStatus:     {AcknowledgedStatus},
		ClosedStatus:       {SentStatus, AcknowledgedStatus, AcceptedStatus, DeclinedStatus},
	}
}

// Predecessors returns the eligible predecessor statuses for the
// requested target status.
func (t Transitions) Predecessors(target Status) ([]Status, bool) {
	preds, ok := t[target]
	return preds, ok
}

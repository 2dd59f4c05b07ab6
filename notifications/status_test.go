// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications_test

import (
	"testing"

	"github.com/partlane/qnotify/notifications"
	svcerr "github.com/partlane/qnotify/pkg/errors/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		desc     string
		status   notifications.Status
		expected string
	}{
		{"created", notifications.CreatedStatus, "CREATED"},
		{"sent", notifications.SentStatus, "SENT"},
		{"received", notifications.ReceivedStatus, "RECEIVED"},
		{"acknowledged", notifications.AcknowledgedStatus, "ACKNOWLEDGED"},
		{"accepted", notifications.AcceptedStatus, "ACCEPTED"},
		{"declined", notifications.DeclinedStatus, "DECLINED"},
		{"canceled", notifications.CanceledStatus, "CANCELED"},
		{"closed", notifications.ClosedStatus, "CLOSED"},
		{"all", notifications.AllStatus, "ALL"},
		{"unknown", notifications.Status(100), "UNKNOWN"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		desc     string
		status   string
		expected notifications.Status
		err      error
	}{
		{"created", "CREATED", notifications.CreatedStatus, nil},
		{"closed", "CLOSED", notifications.ClosedStatus, nil},
		{"all", "ALL", notifications.AllStatus, nil},
		{"unknown", "SHIPPED", notifications.Status(0), svcerr.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			status, err := notifications.ToStatus(tc.status)
			if tc.err != nil {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, notifications.ClosedStatus.Terminal())
	assert.True(t, notifications.CanceledStatus.Terminal())
	assert.False(t, notifications.CreatedStatus.Terminal())
	assert.False(t, notifications.AcceptedStatus.Terminal())
}

func TestDefaultTransitions(t *testing.T) {
	transitions := notifications.DefaultTransitions()

	cases := []struct {
		desc     string
		target   notifications.Status
		expected []notifications.Status
		ok       bool
	}{
		{"sent follows created", notifications.SentStatus, []notifications.Status{notifications.CreatedStatus}, true},
		{"received follows sent", notifications.ReceivedStatus, []notifications.Status{notifications.SentStatus}, true},
		{"acknowledged follows received", notifications.AcknowledgedStatus, []notifications.Status{notifications.ReceivedStatus}, true},
		{"accepted follows acknowledged", notifications.AcceptedStatus, []notifications.Status{notifications.AcknowledgedStatus}, true},
		{"declined follows acknowledged", notifications.DeclinedStatus, []notifications.Status{notifications.AcknowledgedStatus}, true},
		{"closed follows sent or any resolution", notifications.ClosedStatus, []notifications.Status{notifications.SentStatus, notifications.AcknowledgedStatus, notifications.AcceptedStatus, notifications.DeclinedStatus}, true},
		{"created has no predecessor", notifications.CreatedStatus, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			preds, ok := transitions.Predecessors(tc.target)
			assert.Equal(t, tc.ok, ok)
			assert.ElementsMatch(t, tc.expected, preds)
		})
	}
}

func TestStatusJSON(t *testing.T) {
	data, err := notifications.SentStatus.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"SENT"`, string(data))

	var status notifications.Status
	assert.NoError(t, status.UnmarshalJSON([]byte(`"DECLINED"`)))
	assert.Equal(t, notifications.DeclinedStatus, status)

	assert.Error(t, status.UnmarshalJSON([]byte(`"SHIPPED"`)))
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "LIFE-THREATENING", notifications.LifeThreateningSeverity.String())

	severity, err := notifications.ToSeverity("CRITICAL")
	assert.NoError(t, err)
	assert.Equal(t, notifications.CriticalSeverity, severity)

	_, err = notifications.ToSeverity("FATAL")
	assert.Error(t, err)
}

func TestSide(t *testing.T) {
	side, err := notifications.ToSide("RECEIVER")
	assert.NoError(t, err)
	assert.Equal(t, notifications.ReceiverSide, side)

	_, err = notifications.ToSide("OBSERVER")
	assert.Error(t, err)
}

func TestType(t *testing.T) {
	kind, err := notifications.ToType("INVESTIGATION")
	assert.NoError(t, err)
	assert.Equal(t, notifications.InvestigationType, kind)

	_, err = notifications.ToType("RECALL")
	assert.Error(t, err)
}

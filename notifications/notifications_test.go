// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications_test

import (
	"testing"
	"time"

	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(id, sender, receiver string, status notifications.Status, at time.Time) notifications.Message {
	return notifications.Message{
		ID:          id,
		SenderBpn:   sender,
		ReceiverBpn: receiver,
		Status:      status,
		Severity:    notifications.MinorSeverity,
		CreatedAt:   at,
	}
}

func TestAddMessage(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		desc string
		msg  notifications.Message
		err  error
	}{
		{
			desc: "add valid message",
			msg:  message("m1", ownBpn, partnerBpn, notifications.CreatedStatus, now),
			err:  nil,
		},
		{
			desc: "add message with matching sender and receiver",
			msg:  message("m1", ownBpn, ownBpn, notifications.CreatedStatus, now),
			err:  notifications.ErrSameBpn,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			n := notifications.Notification{ID: validID}
			err := n.AddMessage(tc.msg)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			if tc.err != nil {
				assert.Empty(t, n.Messages)
			}
		})
	}
}

func TestAddMessagesIsAtomic(t *testing.T) {
	now := time.Now().UTC()
	n := notifications.Notification{ID: validID}
	msgs := []notifications.Message{
		message("m1", ownBpn, partnerBpn, notifications.CreatedStatus, now),
		message("m2", ownBpn, ownBpn, notifications.CreatedStatus, now),
	}

	err := n.AddMessages(msgs)
	assert.True(t, errors.Contains(err, notifications.ErrSameBpn))
	assert.Empty(t, n.Messages, "a rejected batch leaves the history untouched")
}

func TestStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("status of empty history", func(t *testing.T) {
		n := notifications.Notification{ID: validID}
		_, err := n.Status()
		assert.True(t, errors.Contains(err, notifications.ErrEmptyHistory))
	})

	t.Run("status follows the last message", func(t *testing.T) {
		n := notifications.Notification{ID: validID}
		require.Nil(t, n.AddMessage(message("m1", ownBpn, partnerBpn, notifications.CreatedStatus, now)))
		require.Nil(t, n.AddMessage(message("m2", ownBpn, partnerBpn, notifications.SentStatus, now.Add(time.Second))))

		status, err := n.Status()
		require.Nil(t, err)
		assert.Equal(t, notifications.SentStatus, status)
	})
}

func TestMessagesInStatus(t *testing.T) {
	now := time.Now().UTC()
	n := notifications.Notification{ID: validID}
	require.Nil(t, n.AddMessages([]notifications.Message{
		message("m1", ownBpn, partnerBpn, notifications.CreatedStatus, now),
		message("m2", ownBpn, partnerBpn, notifications.CreatedStatus, now),
		message("m3", ownBpn, partnerBpn, notifications.SentStatus, now.Add(time.Second)),
	}))

	assert.Len(t, n.MessagesInStatus(notifications.CreatedStatus), 2)
	assert.Len(t, n.MessagesInStatus(notifications.SentStatus), 1)
	assert.Len(t, n.MessagesInStatus(notifications.CreatedStatus, notifications.SentStatus), 3)
	assert.Empty(t, n.MessagesInStatus(notifications.ClosedStatus))
}

func TestLeafMessages(t *testing.T) {
	now := time.Now().UTC()
	n := notifications.Notification{ID: validID}
	require.Nil(t, n.AddMessages([]notifications.Message{
		message("m1", ownBpn, partnerBpn, notifications.SentStatus, now),
		message("m2", partnerBpn, ownBpn, notifications.ReceivedStatus, now.Add(time.Second)),
		message("m3", partnerBpn, ownBpn, notifications.AcknowledgedStatus, now.Add(2*time.Second)),
	}))

	leaves := n.LeafMessages()
	require.Len(t, leaves, 2, "one leaf per conversation direction")
	ids := []string{leaves[0].ID, leaves[1].ID}
	assert.Contains(t, ids, "m1")
	assert.Contains(t, ids, "m3")
}

func TestSwitchSenderAndReceiver(t *testing.T) {
	msg := message("m1", ownBpn, partnerBpn, notifications.SentStatus, time.Now().UTC())
	swapped := msg.SwitchSenderAndReceiver()

	assert.Equal(t, partnerBpn, swapped.SenderBpn)
	assert.Equal(t, ownBpn, swapped.ReceiverBpn)
	assert.Equal(t, msg.EdcNotificationID, swapped.EdcNotificationID)
	assert.Equal(t, ownBpn, msg.SenderBpn, "the original message is untouched")
}

func TestClearMessages(t *testing.T) {
	n := notifications.Notification{ID: validID}
	require.Nil(t, n.AddMessage(message("m1", ownBpn, partnerBpn, notifications.CreatedStatus, time.Now().UTC())))

	n.ClearMessages()
	assert.Empty(t, n.Messages)
	assert.Empty(t, n.MessageIDs())
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"time"

	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/events"
)

const (
	notificationPrefix = "notification."
	startOp            = notificationPrefix + "start"
	approveOp          = notificationPrefix + "approve"
	cancelOp           = notificationPrefix + "cancel"
	transitionOp       = notificationPrefix + "update_status"
	editOp             = notificationPrefix + "edit"
	receiveOp          = notificationPrefix + "receive"
)

var (
	_ events.Event = (*startNotificationEvent)(nil)
	_ events.Event = (*approveNotificationEvent)(nil)
	_ events.Event = (*cancelNotificationEvent)(nil)
	_ events.Event = (*updateStatusEvent)(nil)
	_ events.Event = (*editNotificationEvent)(nil)
	_ events.Event = (*receiveMessageEvent)(nil)
)

type startNotificationEvent struct {
	id string
	sn notifications.StartNotification
}

func (sne startNotificationEvent) Encode() (map[string]any, error) {
	val := map[string]any{
		"operation":      startOp,
		"id":             sne.id,
		"title":          sne.sn.Title,
		"receiver_bpn":   sne.sn.ReceiverBpn,
		"severity":       sne.sn.Severity.String(),
		"type":           sne.sn.Type.String(),
		"affected_parts": sne.sn.AffectedPartIDs,
		"occurred_at":    time.Now().UnixNano(),
	}
	if !sne.sn.TargetDate.IsZero() {
		val["target_date"] = sne.sn.TargetDate
	}

	return val, nil
}

type approveNotificationEvent struct {
	id string
}

func (ane approveNotificationEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":   approveOp,
		"id":          ane.id,
		"occurred_at": time.Now().UnixNano(),
	}, nil
}

type cancelNotificationEvent struct {
	id string
}

func (cne cancelNotificationEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":   cancelOp,
		"id":          cne.id,
		"occurred_at": time.Now().UnixNano(),
	}, nil
}

type updateStatusEvent struct {
	id     string
	status notifications.Status
	reason string
}

func (use updateStatusEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":   transitionOp,
		"id":          use.id,
		"status":      use.status.String(),
		"reason":      use.reason,
		"occurred_at": time.Now().UnixNano(),
	}, nil
}

type editNotificationEvent struct {
	en notifications.EditNotification
}

func (ene editNotificationEvent) Encode() (map[string]any, error) {
	val := map[string]any{
		"operation":   editOp,
		"id":          ene.en.ID,
		"title":       ene.en.Title,
		"occurred_at": time.Now().UnixNano(),
	}
	if ene.en.Description != nil {
		val["description"] = *ene.en.Description
	}
	if ene.en.ReceiverBpn != nil {
		val["receiver_bpn"] = *ene.en.ReceiverBpn
	}
	if ene.en.Severity != nil {
		val["severity"] = ene.en.Severity.String()
	}
	if len(ene.en.AffectedPartIDs) != 0 {
		val["affected_parts"] = ene.en.AffectedPartIDs
	}

	return val, nil
}

type receiveMessageEvent struct {
	msg notifications.Message
}

func (rme receiveMessageEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":           receiveOp,
		"message_id":          rme.msg.ID,
		"sender_bpn":          rme.msg.SenderBpn,
		"receiver_bpn":        rme.msg.ReceiverBpn,
		"status":              rme.msg.Status.String(),
		"severity":            rme.msg.Severity.String(),
		"edc_notification_id": rme.msg.EdcNotificationID,
		"occurred_at":         time.Now().UnixNano(),
	}, nil
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-sourcing wrapper of the notification
// service, publishing a lifecycle event per completed operation.
package events

import (
	"context"

	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/events"
	"github.com/partlane/qnotify/pkg/events/store"
)

const streamPrefix = "qnotify."

var _ notifications.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc notifications.Service
}

// NewEventStoreMiddleware returns a wrapper around the notification
// service that sends events to the event store.
func NewEventStoreMiddleware(ctx context.Context, svc notifications.Service, url string) (notifications.Service, error) {
	publisher, err := store.NewPublisher(ctx, url)
	if err != nil {
		return nil, err
	}

	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}, nil
}

func (es *eventStore) Start(ctx context.Context, sn notifications.StartNotification) (string, error) {
	id, err := es.svc.Start(ctx, sn)
	if err != nil {
		return id, err
	}

	event := startNotificationEvent{
		id: id,
		sn: sn,
	}
	if err := es.Publish(ctx, streamPrefix+startOp, event); err != nil {
		return id, err
	}

	return id, nil
}

func (es *eventStore) Find(ctx context.Context, id string) (notifications.Notification, error) {
	return es.svc.Find(ctx, id)
}

func (es *eventStore) FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (notifications.Notification, error) {
	return es.svc.FindByEdcNotificationID(ctx, edcNotificationID)
}

func (es *eventStore) List(ctx context.Context, pm notifications.PageMetadata) (notifications.Page, error) {
	return es.svc.List(ctx, pm)
}

func (es *eventStore) Approve(ctx context.Context, id string) error {
	if err := es.svc.Approve(ctx, id); err != nil {
		return err
	}

	return es.Publish(ctx, streamPrefix+approveOp, approveNotificationEvent{id: id})
}

func (es *eventStore) Cancel(ctx context.Context, id string) error {
	if err := es.svc.Cancel(ctx, id); err != nil {
		return err
	}

	return es.Publish(ctx, streamPrefix+cancelOp, cancelNotificationEvent{id: id})
}

func (es *eventStore) UpdateStatusTransition(ctx context.Context, id string, status notifications.Status, reason string) error {
	if err := es.svc.UpdateStatusTransition(ctx, id, status, reason); err != nil {
		return err
	}

	event := updateStatusEvent{
		id:     id,
		status: status,
		reason: reason,
	}

	return es.Publish(ctx, streamPrefix+transitionOp, event)
}

func (es *eventStore) Edit(ctx context.Context, en notifications.EditNotification) error {
	if err := es.svc.Edit(ctx, en); err != nil {
		return err
	}

	return es.Publish(ctx, streamPrefix+editOp, editNotificationEvent{en: en})
}

func (es *eventStore) DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side notifications.Side) ([]string, error) {
	return es.svc.DistinctFilterValues(ctx, field, startsWith, limit, side)
}

func (es *eventStore) HandleReceive(ctx context.Context, msg notifications.Message) error {
	if err := es.svc.HandleReceive(ctx, msg); err != nil {
		return err
	}

	return es.Publish(ctx, streamPrefix+receiveOp, receiveMessageEvent{msg: msg})
}

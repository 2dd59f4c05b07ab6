// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/partlane/qnotify/notifications"
)

var _ notifications.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     notifications.Service
}

// MetricsMiddleware instruments the notification service by tracking
// request count and latency.
func MetricsMiddleware(svc notifications.Service, counter metrics.Counter, latency metrics.Histogram) notifications.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) Start(ctx context.Context, sn notifications.StartNotification) (string, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "start_notification").Add(1)
		mm.latency.With("method", "start_notification").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Start(ctx, sn)
}

func (mm *metricsMiddleware) Find(ctx context.Context, id string) (notifications.Notification, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_notification").Add(1)
		mm.latency.With("method", "find_notification").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Find(ctx, id)
}

func (mm *metricsMiddleware) FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (notifications.Notification, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_notification_by_reference").Add(1)
		mm.latency.With("method", "find_notification_by_reference").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.FindByEdcNotificationID(ctx, edcNotificationID)
}

func (mm *metricsMiddleware) List(ctx context.Context, pm notifications.PageMetadata) (notifications.Page, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_notifications").Add(1)
		mm.latency.With("method", "list_notifications").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.List(ctx, pm)
}

func (mm *metricsMiddleware) Approve(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "approve_notification").Add(1)
		mm.latency.With("method", "approve_notification").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Approve(ctx, id)
}

func (mm *metricsMiddleware) Cancel(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "cancel_notification").Add(1)
		mm.latency.With("method", "cancel_notification").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Cancel(ctx, id)
}

func (mm *metricsMiddleware) UpdateStatusTransition(ctx context.Context, id string, status notifications.Status, reason string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "update_status_transition").Add(1)
		mm.latency.With("method", "update_status_transition").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.UpdateStatusTransition(ctx, id, status, reason)
}

func (mm *metricsMiddleware) Edit(ctx context.Context, en notifications.EditNotification) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "edit_notification").Add(1)
		mm.latency.With("method", "edit_notification").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Edit(ctx, en)
}

func (mm *metricsMiddleware) DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side notifications.Side) ([]string, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "distinct_filter_values").Add(1)
		mm.latency.With("method", "distinct_filter_values").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.DistinctFilterValues(ctx, field, startsWith, limit, side)
}

func (mm *metricsMiddleware) HandleReceive(ctx context.Context, msg notifications.Message) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "handle_receive").Add(1)
		mm.latency.With("method", "handle_receive").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.HandleReceive(ctx, msg)
}

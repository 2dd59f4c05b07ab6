// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/partlane/qnotify/notifications"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ notifications.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    notifications.Service
}

// TracingMiddleware returns a notification service with tracing capabilities.
func TracingMiddleware(tracer trace.Tracer, svc notifications.Service) notifications.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) Start(ctx context.Context, sn notifications.StartNotification) (string, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_start_notification", trace.WithAttributes(
		attribute.String("receiver_bpn", sn.ReceiverBpn),
		attribute.String("type", sn.Type.String()),
		attribute.String("severity", sn.Severity.String()),
	))
	defer span.End()

	return tm.svc.Start(ctx, sn)
}

func (tm *tracingMiddleware) Find(ctx context.Context, id string) (notifications.Notification, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_find_notification", trace.WithAttributes(
		attribute.String("id", id),
	))
	defer span.End()

	return tm.svc.Find(ctx, id)
}

func (tm *tracingMiddleware) FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (notifications.Notification, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_find_notification_by_reference", trace.WithAttributes(
		attribute.String("edc_notification_id", edcNotificationID),
	))
	defer span.End()

	return tm.svc.FindByEdcNotificationID(ctx, edcNotificationID)
}

func (tm *tracingMiddleware) List(ctx context.Context, pm notifications.PageMetadata) (notifications.Page, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_list_notifications", trace.WithAttributes(
		attribute.Int64("offset", int64(pm.Offset)),
		attribute.Int64("limit", int64(pm.Limit)),
	))
	defer span.End()

	return tm.svc.List(ctx, pm)
}

func (tm *tracingMiddleware) Approve(ctx context.Context, id string) error {
	ctx, span := tm.tracer.Start(ctx, "svc_approve_notification", trace.WithAttributes(
		attribute.String("id", id),
	))
	defer span.End()

	return tm.svc.Approve(ctx, id)
}

func (tm *tracingMiddleware) Cancel(ctx context.Context, id string) error {
	ctx, span := tm.tracer.Start(ctx, "svc_cancel_notification", trace.WithAttributes(
		attribute.String("id", id),
	))
	defer span.End()

	return tm.svc.Cancel(ctx, id)
}

func (tm *tracingMiddleware) UpdateStatusTransition(ctx context.Context, id string, status notifications.Status, reason string) error {
	ctx, span := tm.tracer.Start(ctx, "svc_update_status_transition", trace.WithAttributes(
		attribute.String("id", id),
		attribute.String("status", status.String()),
	))
	defer span.End()

	return tm.svc.UpdateStatusTransition(ctx, id, status, reason)
}

func (tm *tracingMiddleware) Edit(ctx context.Context, en notifications.EditNotification) error {
	ctx, span := tm.tracer.Start(ctx, "svc_edit_notification", trace.WithAttributes(
		attribute.String("id", en.ID),
	))
	defer span.End()

	return tm.svc.Edit(ctx, en)
}

func (tm *tracingMiddleware) DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side notifications.Side) ([]string, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_distinct_filter_values", trace.WithAttributes(
		attribute.String("field", field),
	))
	defer span.End()

	return tm.svc.DistinctFilterValues(ctx, field, startsWith, limit, side)
}

func (tm *tracingMiddleware) HandleReceive(ctx context.Context, msg notifications.Message) error {
	ctx, span := tm.tracer.Start(ctx, "svc_handle_receive", trace.WithAttributes(
		attribute.String("edc_notification_id", msg.EdcNotificationID),
		attribute.String("sender_bpn", msg.SenderBpn),
	))
	defer span.End()

	return tm.svc.HandleReceive(ctx, msg)
}

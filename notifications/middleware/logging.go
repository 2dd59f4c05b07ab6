// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/partlane/qnotify/notifications"
)

var _ notifications.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    notifications.Service
}

// LoggingMiddleware adds logging facilities to the notification service.
func LoggingMiddleware(svc notifications.Service, logger *slog.Logger) notifications.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) Start(ctx context.Context, sn notifications.StartNotification) (id string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("notification",
				slog.String("id", id),
				slog.String("type", sn.Type.String()),
				slog.String("severity", sn.Severity.String()),
				slog.String("receiver_bpn", sn.ReceiverBpn),
				slog.Int("affected_parts", len(sn.AffectedPartIDs)),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Start notification failed", args...)
			return
		}
		lm.logger.Info("Start notification completed successfully", args...)
	}(time.Now())

	return lm.svc.Start(ctx, sn)
}

func (lm *loggingMiddleware) Find(ctx context.Context, id string) (n notifications.Notification, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("notification_id", id),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Find notification failed", args...)
			return
		}
		lm.logger.Info("Find notification completed successfully", args...)
	}(time.Now())

	return lm.svc.Find(ctx, id)
}

func (lm *loggingMiddleware) FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (n notifications.Notification, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("edc_notification_id", edcNotificationID),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Find notification by reference failed", args...)
			return
		}
		lm.logger.Info("Find notification by reference completed successfully", args...)
	}(time.Now())

	return lm.svc.FindByEdcNotificationID(ctx, edcNotificationID)
}

func (lm *loggingMiddleware) List(ctx context.Context, pm notifications.PageMetadata) (page notifications.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("List notifications failed", args...)
			return
		}
		lm.logger.Info("List notifications completed successfully", args...)
	}(time.Now())

	return lm.svc.List(ctx, pm)
}

func (lm *loggingMiddleware) Approve(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("notification_id", id),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Approve notification failed", args...)
			return
		}
		lm.logger.Info("Approve notification completed successfully", args...)
	}(time.Now())

	return lm.svc.Approve(ctx, id)
}

func (lm *loggingMiddleware) Cancel(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("notification_id", id),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Cancel notification failed", args...)
			return
		}
		lm.logger.Info("Cancel notification completed successfully", args...)
	}(time.Now())

	return lm.svc.Cancel(ctx, id)
}

func (lm *loggingMiddleware) UpdateStatusTransition(ctx context.Context, id string, status notifications.Status, reason string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("notification_id", id),
			slog.String("status", status.String()),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Update status transition failed", args...)
			return
		}
		lm.logger.Info("Update status transition completed successfully", args...)
	}(time.Now())

	return lm.svc.UpdateStatusTransition(ctx, id, status, reason)
}

func (lm *loggingMiddleware) Edit(ctx context.Context, en notifications.EditNotification) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("notification_id", en.ID),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Edit notification failed", args...)
			return
		}
		lm.logger.Info("Edit notification completed successfully", args...)
	}(time.Now())

	return lm.svc.Edit(ctx, en)
}

func (lm *loggingMiddleware) DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side notifications.Side) (values []string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("field", field),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Distinct filter values failed", args...)
			return
		}
		lm.logger.Info("Distinct filter values completed successfully", args...)
	}(time.Now())

	return lm.svc.DistinctFilterValues(ctx, field, startsWith, limit, side)
}

func (lm *loggingMiddleware) HandleReceive(ctx context.Context, msg notifications.Message) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("message",
				slog.String("sender_bpn", msg.SenderBpn),
				slog.String("status", msg.Status.String()),
				slog.String("edc_notification_id", msg.EdcNotificationID),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Handle received message failed", args...)
			return
		}
		lm.logger.Info("Handle received message completed successfully", args...)
	}(time.Now())

	return lm.svc.HandleReceive(ctx, msg)
}

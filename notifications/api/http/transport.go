// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package http contains the quality notification API endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/partlane/qnotify"
	api "github.com/partlane/qnotify/api/http"
	apiutil "github.com/partlane/qnotify/api/http/util"
	"github.com/partlane/qnotify/notifications"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler returns a HTTP handler for the notification API endpoints.
func MakeHandler(svc notifications.Service, mux *chi.Mux, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Route("/notifications", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			startNotificationEndpoint(svc),
			decodeStartNotificationRequest,
			api.EncodeResponse,
			opts...,
		), "start_notification").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listNotificationsEndpoint(svc),
			decodeListNotificationsRequest,
			api.EncodeResponse,
			opts...,
		), "list_notifications").ServeHTTP)

		r.Get("/distinct-filter-values", otelhttp.NewHandler(kithttp.NewServer(
			distinctFilterValuesEndpoint(svc),
			decodeDistinctFilterValuesRequest,
			api.EncodeResponse,
			opts...,
		), "distinct_filter_values").ServeHTTP)

		r.Get("/reference/{edcNotificationID}", otelhttp.NewHandler(kithttp.NewServer(
			viewNotificationByReferenceEndpoint(svc),
			decodeViewNotificationByReferenceRequest,
			api.EncodeResponse,
			opts...,
		), "view_notification_by_reference").ServeHTTP)

		r.Post("/receive", otelhttp.NewHandler(kithttp.NewServer(
			receiveMessageEndpoint(svc),
			decodeReceiveMessageRequest,
			api.EncodeResponse,
			opts...,
		), "receive_message").ServeHTTP)

		r.Route("/{notificationID}", func(r chi.Router) {
			r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
				viewNotificationEndpoint(svc),
				decodeViewNotificationRequest,
				api.EncodeResponse,
				opts...,
			), "view_notification").ServeHTTP)

			r.Put("/edit", otelhttp.NewHandler(kithttp.NewServer(
				editNotificationEndpoint(svc),
				decodeEditNotificationRequest,
				api.EncodeResponse,
				opts...,
			), "edit_notification").ServeHTTP)

			r.Post("/approve", otelhttp.NewHandler(kithttp.NewServer(
				approveNotificationEndpoint(svc),
				decodeApproveNotificationRequest,
				api.EncodeResponse,
				opts...,
			), "approve_notification").ServeHTTP)

			r.Post("/cancel", otelhttp.NewHandler(kithttp.NewServer(
				cancelNotificationEndpoint(svc),
				decodeCancelNotificationRequest,
				api.EncodeResponse,
				opts...,
			), "cancel_notification").ServeHTTP)

			r.Post("/update", otelhttp.NewHandler(kithttp.NewServer(
				updateStatusEndpoint(svc),
				decodeUpdateStatusRequest,
				api.EncodeResponse,
				opts...,
			), "update_notification_status").ServeHTTP)
		})
	})

	mux.Get("/health", qnotify.Health("notifications", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

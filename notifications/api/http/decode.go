// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	api "github.com/partlane/qnotify/api/http"
	apiutil "github.com/partlane/qnotify/api/http/util"
	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/errors"
)

func decodeStartNotificationRequest(_ context.Context, r *http.Request) (any, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	req := startNotificationReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(err, errors.ErrMalformedEntity))
	}

	return req, nil
}

func decodeViewNotificationRequest(_ context.Context, r *http.Request) (any, error) {
	req := viewNotificationReq{
		id: chi.URLParam(r, "notificationID"),
	}

	return req, nil
}

func decodeViewNotificationByReferenceRequest(_ context.Context, r *http.Request) (any, error) {
	req := viewNotificationByReferenceReq{
		edcNotificationID: chi.URLParam(r, "edcNotificationID"),
	}

	return req, nil
}

func decodeListNotificationsRequest(_ context.Context, r *http.Request) (any, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	status, err := readStatusQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	side, err := readSideQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	severity, err := readSeverityQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	kind, err := readTypeQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	bpn, err := apiutil.ReadStringQuery(r, api.BpnKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listNotificationsReq{
		pm: notifications.PageMetadata{
			Offset:   offset,
			Limit:    limit,
			Status:   status,
			Side:     side,
			Severity: severity,
			Type:     kind,
			Bpn:      bpn,
		},
	}

	return req, nil
}

func decodeApproveNotificationRequest(_ context.Context, r *http.Request) (any, error) {
	req := approveNotificationReq{
		id: chi.URLParam(r, "notificationID"),
	}

	return req, nil
}

func decodeCancelNotificationRequest(_ context.Context, r *http.Request) (any, error) {
	req := cancelNotificationReq{
		id: chi.URLParam(r, "notificationID"),
	}

	return req, nil
}

func decodeUpdateStatusRequest(_ context.Context, r *http.Request) (any, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	req := updateStatusReq{
		id: chi.URLParam(r, "notificationID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(err, errors.ErrMalformedEntity))
	}

	return req, nil
}

func decodeEditNotificationRequest(_ context.Context, r *http.Request) (any, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	req := editNotificationReq{
		id: chi.URLParam(r, "notificationID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(err, errors.ErrMalformedEntity))
	}

	return req, nil
}

func decodeDistinctFilterValuesRequest(_ context.Context, r *http.Request) (any, error) {
	fieldName, err := apiutil.ReadStringQuery(r, api.FieldNameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	startWith, err := apiutil.ReadStringQuery(r, api.StartWithKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	size, err := apiutil.ReadNumQuery[int64](r, api.SizeKey, 0)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	side, err := readSideQuery(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := distinctFilterValuesReq{
		fieldName: fieldName,
		startWith: startWith,
		size:      size,
		side:      side,
	}

	return req, nil
}

func decodeReceiveMessageRequest(_ context.Context, r *http.Request) (any, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	req := receiveMessageReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(err, errors.ErrMalformedEntity))
	}

	return req, nil
}

func readStatusQuery(r *http.Request) (notifications.Status, error) {
	s, err := apiutil.ReadStringQuery(r, api.StatusKey, notifications.AllStatus.String())
	if err != nil {
		return notifications.AllStatus, err
	}

	return notifications.ToStatus(s)
}

func readSideQuery(r *http.Request) (notifications.Side, error) {
	s, err := apiutil.ReadStringQuery(r, api.SideKey, notifications.AllSides.String())
	if err != nil {
		return notifications.AllSides, err
	}

	return notifications.ToSide(s)
}

func readSeverityQuery(r *http.Request) (notifications.Severity, error) {
	s, err := apiutil.ReadStringQuery(r, api.SeverityKey, notifications.AllSeverities.String())
	if err != nil {
		return notifications.AllSeverities, err
	}

	return notifications.ToSeverity(s)
}

func readTypeQuery(r *http.Request) (notifications.Type, error) {
	s, err := apiutil.ReadStringQuery(r, api.TypeKey, notifications.AllTypes.String())
	if err != nil {
		return notifications.AllTypes, err
	}

	return notifications.ToType(s)
}

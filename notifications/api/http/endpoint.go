// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/partlane/qnotify/notifications"
)

func startNotificationEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(startNotificationReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		severity, err := notifications.ToSeverity(req.Severity)
		if err != nil {
			return nil, err
		}
		kind, err := notifications.ToType(req.Type)
		if err != nil {
			return nil, err
		}

		sn := notifications.StartNotification{
			Title:           req.Title,
			Description:     req.Description,
			AffectedPartIDs: req.AffectedPartIDs,
			ReceiverBpn:     req.ReceiverBpn,
			Severity:        severity,
			Type:            kind,
			TargetDate:      req.TargetDate,
		}
		id, err := svc.Start(ctx, sn)
		if err != nil {
			return nil, err
		}

		return startNotificationRes{ID: id}, nil
	}
}

func viewNotificationEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(viewNotificationReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		n, err := svc.Find(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return viewNotificationRes{n}, nil
	}
}

func viewNotificationByReferenceEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(viewNotificationByReferenceReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		n, err := svc.FindByEdcNotificationID(ctx, req.edcNotificationID)
		if err != nil {
			return nil, err
		}

		return viewNotificationRes{n}, nil
	}
}

func listNotificationsEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(listNotificationsReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		page, err := svc.List(ctx, req.pm)
		if err != nil {
			return nil, err
		}

		return listNotificationsRes{page}, nil
	}
}

func approveNotificationEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(approveNotificationReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		if err := svc.Approve(ctx, req.id); err != nil {
			return nil, err
		}

		return approveNotificationRes{}, nil
	}
}

func cancelNotificationEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(cancelNotificationReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		if err := svc.Cancel(ctx, req.id); err != nil {
			return nil, err
		}

		return cancelNotificationRes{}, nil
	}
}

func updateStatusEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(updateStatusReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		status, err := notifications.ToStatus(req.Status)
		if err != nil {
			return nil, err
		}

		if err := svc.UpdateStatusTransition(ctx, req.id, status, req.Reason); err != nil {
			return nil, err
		}

		return updateStatusRes{}, nil
	}
}

func editNotificationEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(editNotificationReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		en := notifications.EditNotification{
			ID:              req.id,
			Title:           req.Title,
			Description:     req.Description,
			AffectedPartIDs: req.AffectedPartIDs,
			ReceiverBpn:     req.ReceiverBpn,
			TargetDate:      req.TargetDate,
		}
		if req.Severity != nil {
			severity, err := notifications.ToSeverity(*req.Severity)
			if err != nil {
				return nil, err
			}
			en.Severity = &severity
		}

		if err := svc.Edit(ctx, en); err != nil {
			return nil, err
		}

		return editNotificationRes{}, nil
	}
}

func distinctFilterValuesEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(distinctFilterValuesReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		values, err := svc.DistinctFilterValues(ctx, req.fieldName, req.startWith, req.size, req.side)
		if err != nil {
			return nil, err
		}

		return distinctFilterValuesRes{Values: values}, nil
	}
}

func receiveMessageEndpoint(svc notifications.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(receiveMessageReq)
		if err := req.validate(); err != nil {
			return nil, err
		}

		status, err := notifications.ToStatus(req.Status)
		if err != nil {
			return nil, err
		}
		severity, err := notifications.ToSeverity(req.Severity)
		if err != nil {
			return nil, err
		}

		msg := notifications.Message{
			ID:                  req.ID,
			SenderBpn:           req.SenderBpn,
			ReceiverBpn:         req.ReceiverBpn,
			Description:         req.Description,
			Status:              status,
			Severity:            severity,
			AffectedPartIDs:     req.AffectedPartIDs,
			EdcNotificationID:   req.EdcNotificationID,
			ContractAgreementID: req.ContractAgreementID,
			TargetDate:          req.TargetDate,
		}
		if err := svc.HandleReceive(ctx, msg); err != nil {
			return nil, err
		}

		return receiveMessageRes{}, nil
	}
}

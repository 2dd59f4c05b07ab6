// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/partlane/qnotify/pkg/errors"

// Wrapper for Service errors.
var (
	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.NewServiceError("failed to create entity")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = errors.NewServiceError("failed to remove entity")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.NewServiceError("view entity failed")

	// ErrUpdateEntity indicates error in updating entity or entities.
	ErrUpdateEntity = errors.NewServiceError("update entity failed")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.NewNotFoundError("entity not found")

	// ErrInvalidStatus indicates an invalid status value.
	ErrInvalidStatus = errors.NewRequestError("invalid status")

	// ErrInvalidSeverity indicates an invalid severity value.
	ErrInvalidSeverity = errors.NewRequestError("invalid severity")

	// ErrInvalidSide indicates an invalid notification side value.
	ErrInvalidSide = errors.NewRequestError("invalid notification side")

	// ErrInvalidType indicates an invalid notification type value.
	ErrInvalidType = errors.NewRequestError("invalid notification type")

	// ErrIssueProviderID indicates failure to issue unique ID from ID provider.
	ErrIssueProviderID = errors.NewServiceError("failed to issue unique ID from id provider")
)

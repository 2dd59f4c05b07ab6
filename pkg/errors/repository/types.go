// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package repository

import "github.com/partlane/qnotify/pkg/errors"

// Wrapper for Repository errors.
var (
	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.NewNotFoundError("entity not found")

	// ErrConflict indicates that entity already exists.
	ErrConflict = errors.NewConflictError("entity already exists")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.NewServiceError("failed to create entity in the db")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.NewServiceError("view entity failed")

	// ErrUpdateEntity indicates error in updating entity or entities.
	ErrUpdateEntity = errors.NewServiceError("update entity failed")

	// ErrRemoveEntity indicates error in removing entity.
	ErrRemoveEntity = errors.NewServiceError("failed to remove entity")

	// ErrFailedOpDB indicates a failure in a database operation.
	ErrFailedOpDB = errors.NewServiceError("operation on db element failed")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = errors.NewRequestError("malformed entity specification")

	// ErrMigration indicates failed database schema migration.
	ErrMigration = errors.NewServiceError("failed to apply db schema migration")
)

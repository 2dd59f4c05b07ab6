// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package util

import "github.com/partlane/qnotify/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.NewRequestError("something went wrong with the request")

	// ErrMissingID indicates missing entity ID.
	ErrMissingID = errors.NewRequestError("missing entity id")

	// ErrInvalidIDFormat indicates an invalid ID format.
	ErrInvalidIDFormat = errors.NewRequestError("invalid id format provided")

	// ErrMissingTitle indicates missing notification title.
	ErrMissingTitle = errors.NewRequestError("missing notification title")

	// ErrMissingDescription indicates missing notification description.
	ErrMissingDescription = errors.NewRequestError("missing notification description")

	// ErrMissingPartIDs indicates missing affected part ids.
	ErrMissingPartIDs = errors.NewRequestError("missing affected part ids")

	// ErrMissingReceiverBpn indicates missing receiver business partner number.
	ErrMissingReceiverBpn = errors.NewRequestError("missing receiver bpn")

	// ErrMissingStatus indicates missing target status.
	ErrMissingStatus = errors.NewRequestError("missing target status")

	// ErrMissingReason indicates missing status transition reason.
	ErrMissingReason = errors.NewRequestError("missing reason")

	// ErrMissingFieldName indicates missing distinct-values field name.
	ErrMissingFieldName = errors.NewRequestError("missing field name")

	// ErrLimitSize indicates an invalid limit.
	ErrLimitSize = errors.NewRequestError("invalid limit size")

	// ErrOffsetSize indicates an invalid offset.
	ErrOffsetSize = errors.NewRequestError("invalid offset size")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.NewRequestError("invalid query parameters")

	// ErrUnsupportedContentType indicates an unacceptable or missing content type.
	ErrUnsupportedContentType = errors.NewMediaTypeError("unsupported content type")
)

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// NestError is an Error that can embed another error while keeping
// its own concrete type, so HTTP encoders can still switch on it.
type NestError interface {
	Error
	Embed(e error) error
}

var _ NestError = (*customError)(nil)

func (e *customError) Embed(err error) error {
	if err == nil {
		return e
	}

	return &customError{
		msg: e.msg,
		err: fmt.Errorf("%w: %w", e.err, err),
	}
}

// RequestError indicates a malformed or invalid request.
type RequestError struct {
	customError
}

var _ NestError = (*RequestError)(nil)

func NewRequestError(message string) NestError {
	return &RequestError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *RequestError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &RequestError{
		customError: *embedded.(*customError),
	}
}

// NotFoundError indicates a missing entity.
type NotFoundError struct {
	customError
}

var _ NestError = (*NotFoundError)(nil)

func NewNotFoundError(message string) NestError {
	return &NotFoundError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *NotFoundError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &NotFoundError{
		customError: *embedded.(*customError),
	}
}

// ConflictError indicates an entity state conflicting with the request.
type ConflictError struct {
	customError
}

var _ NestError = (*ConflictError)(nil)

func NewConflictError(message string) NestError {
	return &ConflictError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *ConflictError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &ConflictError{
		customError: *embedded.(*customError),
	}
}

// ServiceError indicates a failure while processing an otherwise valid request.
type ServiceError struct {
	customError
}

var _ NestError = (*ServiceError)(nil)

func NewServiceError(message string) NestError {
	return &ServiceError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *ServiceError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &ServiceError{
		customError: *embedded.(*customError),
	}
}

// MediaTypeError indicates unsupported request content type.
type MediaTypeError struct {
	customError
}

var _ NestError = (*MediaTypeError)(nil)

func NewMediaTypeError(message string) NestError {
	return &MediaTypeError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *MediaTypeError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &MediaTypeError{
		customError: *embedded.(*customError),
	}
}

// InternalError indicates an unexpected server side failure.
type InternalError struct {
	customError
}

var _ NestError = (*InternalError)(nil)

func NewInternalError() error {
	return &InternalError{
		customError: customError{
			msg: "internal server error",
			err: errors.New("internal server error"),
		},
	}
}

func NewInternalErrorWithErr(err error) NestError {
	return &InternalError{
		customError: customError{
			msg: "internal server error",
			err: fmt.Errorf("%w: %w", errors.New("internal server error"), err),
		},
	}
}

func (e *InternalError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &InternalError{
		customError: *embedded.(*customError),
	}
}

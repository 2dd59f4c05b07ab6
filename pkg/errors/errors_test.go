// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	nerrors "errors"
	"testing"

	"github.com/partlane/qnotify/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	errWrapper = errors.New("wrapper")
	errCause   = errors.New("cause")
	errNative  = nerrors.New("native error")
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		desc  string
		err   error
		msg   string
		bytes []byte
	}{
		{
			desc:  "plain error",
			err:   errCause,
			msg:   "cause",
			bytes: []byte(`{"message":"cause"}`),
		},
		{
			desc:  "wrapped error reports innermost message first",
			err:   errors.Wrap(errWrapper, errCause),
			msg:   "cause: wrapper",
			bytes: []byte(`{"message":"cause"}`),
		},
		{
			desc:  "empty error",
			err:   errors.New(""),
			msg:   "",
			bytes: []byte(`{"message":""}`),
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.msg, c.err.Error())
			data, err := c.err.(errors.Error).MarshalJSON()
			assert.NoError(t, err)
			assert.Equal(t, c.bytes, data)
		})
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil contains non-nil",
			container: nil,
			contained: errCause,
			contains:  false,
		},
		{
			desc:      "non-nil contains nil",
			container: errCause,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "unrelated errors",
			container: errCause,
			contained: errWrapper,
			contains:  false,
		},
		{
			desc:      "wrapped contains cause",
			container: errors.Wrap(errWrapper, errCause),
			contained: errCause,
			contains:  true,
		},
		{
			desc:      "wrapped contains wrapper",
			container: errors.Wrap(errWrapper, errCause),
			contained: errWrapper,
			contains:  true,
		},
		{
			desc:      "wrapped contains native cause",
			container: errors.Wrap(errWrapper, errNative),
			contained: errNative,
			contains:  true,
		},
		{
			desc:      "double wrap keeps innermost",
			container: errors.Wrap(errors.New("outer"), errors.Wrap(errWrapper, errCause)),
			contained: errCause,
			contains:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.contains, errors.Contains(c.container, c.contained))
		})
	}
}

func TestTypedWrapKeepsConcreteType(t *testing.T) {
	// The innermost typed error drives the HTTP status mapping, so its
	// concrete type must survive wrapping.
	notFound := errors.NewNotFoundError("notification not found")
	wrapped := errors.Wrap(errWrapper, notFound)

	_, ok := wrapped.(*errors.NotFoundError)
	assert.True(t, ok, "wrapping a NotFoundError cause must preserve its type")
	assert.True(t, errors.Contains(wrapped, errWrapper))

	req := errors.NewRequestError("bad request")
	wrapped = errors.Wrap(req, errNative)
	_, ok = wrapped.(*errors.RequestError)
	assert.True(t, ok, "a RequestError wrapper around a native error must preserve its type")
}

func TestUnwrap(t *testing.T) {
	wrapper, cause := errors.Unwrap(errors.Wrap(errWrapper, errCause))
	assert.Equal(t, errCause.Error(), wrapper.Error())
	assert.Contains(t, cause.Error(), errWrapper.Error())

	wrapper, cause = errors.Unwrap(errNative)
	assert.Nil(t, wrapper)
	assert.Equal(t, errNative, cause)
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package ulid provides a ULID identity provider.
package ulid

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/partlane/qnotify"
	"github.com/partlane/qnotify/pkg/errors"
)

// ErrGeneratingID indicates error in generating ULID.
var ErrGeneratingID = errors.New("generating id failed")

var _ qnotify.IDProvider = (*ulidProvider)(nil)

type ulidProvider struct {
	entropy io.Reader
}

// New instantiates a ULID provider.
func New() qnotify.IDProvider {
	return &ulidProvider{
		entropy: rand.Reader,
	}
}

func (up *ulidProvider) ID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), up.entropy)
	if err != nil {
		return "", errors.Wrap(ErrGeneratingID, err)
	}

	return id.String(), nil
}

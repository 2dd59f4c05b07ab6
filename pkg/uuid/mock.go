// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package uuid

import (
	"fmt"
	"sync"

	"github.com/partlane/qnotify"
)

// Prefix represents the prefix used to generate deterministic mock UUIDs.
const Prefix = "123e4567-e89b-12d3-a456-"

var _ qnotify.IDProvider = (*uuidProviderMock)(nil)

type uuidProviderMock struct {
	mu      sync.Mutex
	counter int
}

// NewMock creates a deterministic "UUID" provider for testing.
func NewMock() qnotify.IDProvider {
	return &uuidProviderMock{}
}

func (up *uuidProviderMock) ID() (string, error) {
	up.mu.Lock()
	defer up.mu.Unlock()

	up.counter++
	return fmt.Sprintf("%s%012d", Prefix, up.counter), nil
}

// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package qnotify

import (
	"encoding/json"
	"net/http"
)

const (
	contentType = "application/health+json"
	svcStatus   = "pass"
)

var (
	// Version of the service.
	Version = "0.4.0"
	// BuildTime of the service.
	BuildTime = "1970-01-01_00:00:00"
)

// HealthInfo contains the health check details of a running service.
type HealthInfo struct {
	// Status contains the service status.
	Status string `json:"status"`

	// Version contains the current service version.
	Version string `json:"version"`

	// Description contains the service description.
	Description string `json:"description"`

	// BuildTime contains the service build time.
	BuildTime string `json:"build_time"`

	// InstanceID contains the ID of the running instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes a health check endpoint for the given service.
func Health(service, instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Description: service + " service",
			BuildTime:   BuildTime,
			InstanceID:  instanceID,
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

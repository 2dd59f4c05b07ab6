// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package edc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/partlane/qnotify/edc"
	"github.com/partlane/qnotify/notifications"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage(url string) notifications.Message {
	return notifications.Message{
		ID:                "4bb6c591-d6b6-4069-9b4f-cb1aa0e60b89",
		SenderBpn:         "BPNL000000000001",
		ReceiverBpn:       "BPNL000000000002",
		Description:       "Porosity found in casting batch 42",
		Status:            notifications.SentStatus,
		Severity:          notifications.MajorSeverity,
		AffectedPartIDs:   []string{"urn:uuid:part-0001"},
		EdcNotificationID: "7d3f37e2-cbf1-4d3a-a09e-3d1b6e62c9b1",
		EdcURL:            url,
		TargetDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:         time.Now().UTC(),
	}
}

func TestDeliver(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/qualitynotifications/receive", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	transport := edc.New(edc.Config{Timeout: time.Second})
	msg := testMessage(srv.URL)

	err := transport.Deliver(context.Background(), msg)
	require.NoError(t, err)

	header := received["header"].(map[string]any)
	assert.Equal(t, msg.EdcNotificationID, header["notificationId"])
	assert.Equal(t, msg.SenderBpn, header["senderBPN"])
	assert.Equal(t, msg.ReceiverBpn, header["recipientBPN"])
	assert.Equal(t, "SENT", header["status"])
	assert.Equal(t, "MAJOR", header["severity"])

	content := received["content"].(map[string]any)
	assert.Equal(t, msg.Description, content["information"])
}

func TestDeliverConnectorFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	transport := edc.New(edc.Config{Timeout: time.Second})

	err := transport.Deliver(context.Background(), testMessage(srv.URL))
	assert.Error(t, err)
}

func TestDeliverMissingEndpoint(t *testing.T) {
	transport := edc.New(edc.Config{})

	msg := testMessage("")
	err := transport.Deliver(context.Background(), msg)
	assert.Error(t, err)
}

func TestDeliverContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	transport := edc.New(edc.Config{Timeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := transport.Deliver(ctx, testMessage(srv.URL))
	assert.Error(t, err)
}

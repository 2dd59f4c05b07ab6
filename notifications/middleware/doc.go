// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides logging, metrics and tracing middleware
// for the quality notification service.
package middleware

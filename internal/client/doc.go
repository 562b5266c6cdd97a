// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync daemon runtime.
//
// It wires the local store, the server transport, and the background
// reconciliation job into a single process lifecycle.
package client

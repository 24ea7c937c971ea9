// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It wires the configured services and background workers into a single
// process lifecycle: one synchronization pass, a watch loop driven by the
// sync worker, or a printout of the sync journal.
package client

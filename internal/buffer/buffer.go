// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package buffer implements the bounded, newest-first event buffers that back
// the prediction history and the activity feed.
package buffer

// Default capacities.
const (
	HistoryCapacity  = 50
	ActivityCapacity = 10
)

// Push returns a new slice holding item followed by the first capacity-1
// elements of buf. The input slice is never modified and the result never
// shares its backing array, so snapshots handed to readers stay stable.
// A capacity of zero or less yields an empty buffer.
func Push[T any](buf []T, item T, capacity int) []T {
	if capacity <= 0 {
		return []T{}
	}
	n := len(buf) + 1
	if n > capacity {
		n = capacity
	}
	out := make([]T, n)
	out[0] = item
	copy(out[1:], buf)
	return out
}

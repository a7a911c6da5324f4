// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/etcheader

package etcheader

const (
	maxInt   = int(^uint(0) >> 1)
	maxInt64 = ^uint64(0) >> 1
)

// i64FromU64 converts an offset or size to an int64 for seeking.
func i64FromU64(n uint64) (int64, error) {
	if n > maxInt64 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return int64(n), nil
}

// intFromI64 converts a size to an int for allocation.
func intFromI64(n int64) (int, error) {
	if n < 0 || uint64(n) > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(n), nil
}

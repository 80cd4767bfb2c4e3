// SPDX-License-Identifier: MIT

package bench

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidSuite is returned when a suite or case fails validation.
	ErrInvalidSuite = errors.New("bench: invalid suite")

	// ErrVerifyFailed is returned when a kernel result disagrees with
	// MultiplyStandard beyond the verification tolerance.
	ErrVerifyFailed = errors.New("bench: kernel result mismatch")

	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("bench: unknown report format")
)

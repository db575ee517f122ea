// Package common defines shared constants and sentinel errors used across
// the peerlink server and client. Callers should use errors.Is to match
// these values; component packages wrap them with more specific errors.
package common

import "errors"

var (
	// ErrParseFailure marks a malformed or incomplete multipart body.
	ErrParseFailure = errors.New("parse failure")

	// ErrAuthFailure marks a token that is forged, corrupted or sealed with
	// another key. It never says which of those it was.
	ErrAuthFailure = errors.New("invalid token")

	// ErrTransferUnavailable marks a handle whose listener was consumed,
	// expired, never bound or cannot be reached.
	ErrTransferUnavailable = errors.New("transfer unavailable")

	// ErrIOFailure marks disk or socket errors.
	ErrIOFailure = errors.New("i/o failure")
)

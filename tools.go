//go:build tools
// +build tools

// Package tools pins tool dependencies (mockgen) in go.mod so that
// go generate works on a fresh checkout.
package peerlink

import (
	_ "go.uber.org/mock/mockgen"
)

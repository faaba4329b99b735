//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: generates the *_mock_test.go files (go:generate)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration status/down during development

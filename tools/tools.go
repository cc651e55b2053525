//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These are installed globally via `go install` and intentionally kept out
// of go.mod, which only tracks runtime dependencies.
package tools

// Development tools (install via `go install`):
//
// Air - Live reload while working on the dashboard
//   Install: go install github.com/air-verse/air@v1.63.0
//   Version: v1.63.0 (pinned 2025-11-10)
//   Docs: https://github.com/air-verse/air
//
// golangci-lint - Lint aggregator used before sending changes for review
//   Install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@v1.64.8
//   Version: v1.64.8 (pinned 2025-11-10)
//   Docs: https://golangci-lint.run

//go:build tools

// Package tools pins the versions of the linters and formatters.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/incu6us/goimports-reviser/v3"
	_ "mvdan.cc/gofumpt"
)

//go:build tools

// Package tools pins the dev binaries: live reload, DI codegen, swagger docs and mocks.
package tools

import (
	_ "github.com/air-verse/air"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "go.uber.org/mock/mockgen"
)

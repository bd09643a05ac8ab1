// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package board

import "errors"

// Error codes attached to board errors via oops.
const (
	CodeOutOfBounds       = "OUT_OF_BOUNDS"
	CodeInvalidDimensions = "INVALID_DIMENSIONS"
	CodeDuplicateEntity   = "DUPLICATE_ENTITY"
	CodeNotRegistered     = "NOT_REGISTERED"
	CodeInvalidPattern    = "INVALID_PATTERN"
)

// Sentinel errors for board operations.
var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrDuplicateEntity   = errors.New("another entity is registered with this id")
	ErrNotRegistered     = errors.New("entity is not registered on this board")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package scenario

import "errors"

// Error codes for scenario loading.
const (
	CodeReadFailed         = "SCENARIO_READ_FAILED"
	CodeSchemaViolation    = "SCENARIO_SCHEMA_VIOLATION"
	CodeInvalidScenario    = "SCENARIO_INVALID"
	CodeUnsupportedVersion = "SCENARIO_UNSUPPORTED_VERSION"
	CodeDuplicateID        = "SCENARIO_DUPLICATE_ID"
	CodeUnknownActor       = "SCENARIO_UNKNOWN_ACTOR"
)

// Sentinel errors.
var (
	ErrSchemaViolation    = errors.New("scenario does not match schema")
	ErrInvalidScenario    = errors.New("invalid scenario")
	ErrUnsupportedVersion = errors.New("unsupported scenario format version")
	ErrDuplicateID        = errors.New("duplicate entity id")
	ErrUnknownActor       = errors.New("actor is not a placed person")
)

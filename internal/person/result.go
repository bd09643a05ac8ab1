// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package person

import (
	"encoding/json"
	"fmt"

	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/pkg/errutil"
)

// Code classifies a verb outcome. Successful results carry CodeOK.
type Code string

// Result codes.
const (
	CodeOK              Code = "OK"
	CodeNotPlaced       Code = "NOT_PLACED"
	CodeOutOfBounds     Code = "OUT_OF_BOUNDS"
	CodeBlocked         Code = "BLOCKED"
	CodeTooFar          Code = "TOO_FAR"
	CodeDiagonal        Code = "DIAGONAL"
	CodeInvalidDistance Code = "INVALID_DISTANCE"
	CodeInvalidDir      Code = "INVALID_DIRECTION"
	CodeNotJumpable     Code = "NOT_JUMPABLE"
	CodeNotMovable      Code = "NOT_MOVABLE"
	CodeTooHeavy        Code = "TOO_HEAVY"
	CodeNotFound        Code = "NOT_FOUND"
	CodeContainerClosed Code = "CONTAINER_CLOSED"
	CodeContainerFull   Code = "CONTAINER_FULL"
	CodeNotUsable       Code = "NOT_USABLE"
	CodeNotCollectable  Code = "NOT_COLLECTABLE"
	CodeNotWearable     Code = "NOT_WEARABLE"
	CodeUnreachable     Code = "UNREACHABLE"
	CodeRollback        Code = "ROLLBACK"
	CodeInvalid         Code = "INVALID"
)

// Result is the common part of every verb outcome.
type Result struct {
	Success bool   `json:"success"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Outcome exposes the common result of any verb-specific result type.
type Outcome interface {
	Outcome() Result
}

// Outcome implements Outcome.
func (r Result) Outcome() Result { return r }

func succeed(format string, args ...any) Result {
	return Result{Success: true, Code: CodeOK, Message: fmt.Sprintf(format, args...)}
}

func fail(code Code, format string, args ...any) Result {
	return Result{Code: code, Message: fmt.Sprintf(format, args...)}
}

// failFrom turns a registry or container error into a result, keeping the
// error's oops code when it maps onto a result code.
func failFrom(err error, format string, args ...any) Result {
	code := Code(errutil.Code(err, string(CodeInvalid)))
	switch code {
	case CodeOutOfBounds, CodeNotFound, CodeContainerClosed, CodeContainerFull:
	default:
		code = CodeInvalid
	}
	return fail(code, format, args...)
}

// rolledBack reports a registry failure in the middle of a transaction
// whose earlier steps were undone.
func rolledBack(err error, format string, args ...any) Result {
	r := fail(CodeRollback, format, args...)
	r.Message += ": " + errutil.Code(err, "registry error")
	return r
}

// MoveResult reports a walk or run.
type MoveResult struct {
	Result
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
}

// JumpResult reports a jump.
type JumpResult struct {
	Result
	From entity.Position `json:"from"`
	Over entity.Position `json:"over"`
	To   entity.Position `json:"to"`
}

// ShoveResult reports a push or pull.
type ShoveResult struct {
	Result
	ObjectID       string          `json:"object_id,omitempty"`
	ObjectPosition entity.Position `json:"object_position"`
	PersonPosition entity.Position `json:"person_position"`
}

// TransferResult reports an item changing hands between containers,
// the board, or the worn list.
type TransferResult struct {
	Result
	ItemID      string           `json:"item_id,omitempty"`
	ContainerID string           `json:"container_id,omitempty"`
	Position    *entity.Position `json:"position,omitempty"`
}

// Scope says where a referenced entity was resolved.
type Scope string

// Resolution scopes, searched in this order.
const (
	ScopeInventory Scope = "inventory"
	ScopeNearby    Scope = "nearby"
	ScopeWorld     Scope = "world"
)

// UseResult reports using an item alone or with a target.
type UseResult struct {
	Result
	ItemID      string `json:"item_id,omitempty"`
	TargetID    string `json:"target_id,omitempty"`
	TargetScope Scope  `json:"target_scope,omitempty"`
}

// LookResult lists what a person can see.
type LookResult struct {
	Result
	Center  entity.Position   `json:"center"`
	Radius  int               `json:"radius"`
	Objects []entity.Physical `json:"-"`
	Others  []entity.Entity   `json:"-"`
}

// MarshalJSON exports the seen entities as flat field maps.
func (r LookResult) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // encoding passthrough
	return json.Marshal(struct {
		Result
		Center  entity.Position  `json:"center"`
		Radius  int              `json:"radius"`
		Objects []map[string]any `json:"objects"`
		Others  []map[string]any `json:"others"`
	}{
		Result:  r.Result,
		Center:  r.Center,
		Radius:  r.Radius,
		Objects: entity.FieldsList(r.Objects),
		Others:  entity.FieldsList(r.Others),
	})
}

// TravelResult reports a multi-step walk along a computed path.
type TravelResult struct {
	Result
	Path    []entity.Position `json:"path"`
	Visited []entity.Position `json:"visited"`
}

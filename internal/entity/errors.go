// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

import "errors"

// Error codes attached to entity errors via oops.
const (
	CodeContainerClosed = "CONTAINER_CLOSED"
	CodeContainerFull   = "CONTAINER_FULL"
	CodeNotFound        = "NOT_FOUND"
	CodeItemPlaced      = "ITEM_PLACED"
	CodeDuplicateItem   = "DUPLICATE_ITEM"
	CodeSelfContainment = "SELF_CONTAINMENT"
)

// Sentinel errors for container operations.
var (
	ErrContainerClosed = errors.New("container is closed")
	ErrContainerFull   = errors.New("container is full")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemPlaced      = errors.New("item is still placed on a grid")
	ErrDuplicateItem   = errors.New("item already in container")
	ErrSelfContainment = errors.New("container cannot hold itself")
)

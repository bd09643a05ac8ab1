// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Validation limits for entity fields.
const (
	MaxIDLength          = 64
	MaxNameLength        = 100
	MaxDescriptionLength = 4000
)

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateID checks that an id is non-empty, printable, and short.
func ValidateID(id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if len(id) > MaxIDLength {
		return &ValidationError{Field: "id", Message: fmt.Sprintf("exceeds maximum length of %d", MaxIDLength)}
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return &ValidationError{Field: "id", Message: "cannot contain whitespace or control characters"}
		}
	}
	return nil
}

// ValidateName checks that a name is valid.
// Names must be non-empty, valid UTF-8, no control characters, and within length limit.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if !utf8.ValidString(name) {
		return &ValidationError{Field: "name", Message: "must be valid UTF-8"}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("exceeds maximum length of %d", MaxNameLength)}
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return &ValidationError{Field: "name", Message: "cannot contain control characters"}
		}
	}
	return nil
}

// ValidateDescription checks that a description is valid.
// Descriptions may be empty; newlines and tabs are the only control characters allowed.
func ValidateDescription(desc string) error {
	if desc == "" {
		return nil
	}
	if !utf8.ValidString(desc) {
		return &ValidationError{Field: "description", Message: "must be valid UTF-8"}
	}
	if len(desc) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("exceeds maximum length of %d", MaxDescriptionLength)}
	}
	for _, r := range desc {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return &ValidationError{Field: "description", Message: "cannot contain control characters (except newline/tab)"}
		}
	}
	return nil
}

// Validate checks the fields of any entity variant, recursing into
// container contents.
func Validate(e Entity) error {
	c := e.Core()
	if err := ValidateID(c.ID); err != nil {
		return err
	}
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidateDescription(c.Description); err != nil {
		return err
	}
	if p, ok := e.(Physical); ok {
		if p.Physical().Weight < 0 {
			return &ValidationError{Field: "weight", Message: "cannot be negative"}
		}
	}
	h, ok := e.(Holder)
	if !ok {
		return nil
	}
	store := h.Storage()
	if store.Capacity < 0 {
		return &ValidationError{Field: "capacity", Message: "cannot be negative"}
	}
	if store.Len() > store.Capacity {
		return &ValidationError{Field: "contents", Message: fmt.Sprintf("holds %d items, capacity is %d", store.Len(), store.Capacity)}
	}
	for _, item := range store.contents {
		if item.Core().Placed() {
			return &ValidationError{Field: "contents", Message: fmt.Sprintf("item %s has a grid position", item.Core().ID)}
		}
		if err := Validate(item); err != nil {
			return err
		}
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package script parses and runs action scripts: one verb per line,
// driving a single person on a board.
//
//	move X Y [run]        jump X Y          push X Y DIR
//	pull X Y              pickup X Y        drop ITEM X Y
//	get CONTAINER ITEM    put ITEM CONTAINER
//	use ITEM [with ITEM]  wear ITEM         takeoff ITEM
//	open ID               close ID          look [RADIUS] [PATTERN]
//	travel X Y            path X Y
//
// Text after '#' is a comment. Ids containing spaces can be quoted.
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// scriptLexer keeps ids like red-gem and globs like chest* as single
// tokens. Int only matches whole words so ULIDs lex as Ident.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Int", Pattern: `-?\d+\b`},
	{Name: "Ident", Pattern: `[\w*?\[\]][\w\-.*?\[\]]*`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Action is one parsed script line. Exactly one field is set.
type Action struct {
	Pos  lexer.Position `parser:""`
	Move *MoveAction    `parser:"  @@"`
	Cell *CellAction    `parser:"| @@"`
	Push *PushAction    `parser:"| @@"`
	Get  *GetAction     `parser:"| @@"`
	Put  *PutAction     `parser:"| @@"`
	Use  *UseAction     `parser:"| @@"`
	Look *LookAction    `parser:"| @@"`
	Drop *DropAction    `parser:"| @@"`
	Item *ItemAction    `parser:"| @@"`
}

// Cell is a board coordinate.
type Cell struct {
	X int `parser:"@Int"`
	Y int `parser:"@Int"`
}

// MoveAction: move X Y [run]
type MoveAction struct {
	At  Cell `parser:"'move' @@"`
	Run bool `parser:"@'run'?"`
}

// CellAction covers the verbs that take only a cell.
type CellAction struct {
	Verb string `parser:"@('jump' | 'pull' | 'pickup' | 'travel' | 'path')"`
	At   Cell   `parser:"@@"`
}

// PushAction: push X Y DIR
type PushAction struct {
	At        Cell   `parser:"'push' @@"`
	Direction string `parser:"@Ident"`
}

// GetAction: get CONTAINER ITEM
type GetAction struct {
	Container string `parser:"'get' @(Ident | String | Int)"`
	Item      string `parser:"@(Ident | String | Int)"`
}

// PutAction: put ITEM CONTAINER
type PutAction struct {
	Item      string `parser:"'put' @(Ident | String | Int)"`
	Container string `parser:"@(Ident | String | Int)"`
}

// UseAction: use ITEM [with ITEM]
type UseAction struct {
	Item   string `parser:"'use' @(Ident | String | Int)"`
	Target string `parser:"('with' @(Ident | String | Int))?"`
}

// LookAction: look [RADIUS] [PATTERN]
type LookAction struct {
	Radius  *int   `parser:"'look' @Int?"`
	Pattern string `parser:"@(Ident | String)?"`
}

// DropAction: drop ITEM X Y
type DropAction struct {
	Item string `parser:"'drop' @(Ident | String | Int)"`
	At   Cell   `parser:"@@"`
}

// ItemAction covers the verbs that take a single id.
type ItemAction struct {
	Verb string `parser:"@('wear' | 'takeoff' | 'open' | 'close')"`
	ID   string `parser:"@(Ident | String | Int)"`
}

// Verb names the action for logs and metrics.
func (a *Action) Verb() string {
	switch {
	case a.Move != nil:
		if a.Move.Run {
			return "run"
		}
		return "move"
	case a.Cell != nil:
		return a.Cell.Verb
	case a.Push != nil:
		return "push"
	case a.Get != nil:
		return "get"
	case a.Put != nil:
		return "put"
	case a.Use != nil:
		return "use"
	case a.Look != nil:
		return "look"
	case a.Drop != nil:
		return "drop"
	case a.Item != nil:
		return a.Item.Verb
	}
	return ""
}

// NewParser builds the line parser.
func NewParser() (*participle.Parser[Action], error) {
	return participle.Build[Action](
		participle.Lexer(scriptLexer),
		participle.Unquote("String"),
	)
}

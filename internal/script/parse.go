// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/oops"
)

// CodeSyntax marks a script line that does not parse.
const CodeSyntax = "SCRIPT_SYNTAX"

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("script syntax error")

var parser *participle.Parser[Action]

func init() {
	var err error
	parser, err = NewParser()
	if err != nil {
		panic(fmt.Sprintf("failed to build script parser: %v", err))
	}
}

// Statement is a parsed action with its source line.
type Statement struct {
	Line   int
	Source string
	Action *Action
}

// ParseLine parses a single action.
func ParseLine(line string) (*Action, error) {
	a, err := parser.ParseString("", line)
	if err != nil {
		return nil, oops.Code(CodeSyntax).
			With("source", line).
			Wrapf(errors.Join(ErrSyntax, err), "parse action")
	}
	return a, nil
}

// Parse parses script lines, skipping blanks and comments. Line numbers
// count from one.
func Parse(lines []string) ([]Statement, error) {
	var out []Statement
	for i, raw := range lines {
		src := strings.TrimSpace(raw)
		if src == "" || strings.HasPrefix(src, "#") {
			continue
		}
		a, err := ParseLine(src)
		if err != nil {
			return nil, oops.With("line", i+1).Wrap(err)
		}
		out = append(out, Statement{Line: i + 1, Source: src, Action: a})
	}
	return out, nil
}

// ParseText splits text on newlines and parses each line.
func ParseText(text string) ([]Statement, error) {
	return Parse(strings.Split(text, "\n"))
}

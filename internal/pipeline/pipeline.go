/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package pipeline wires the four compiler stages together and knows how to
// stop early: lexer -> parser -> semantics -> codegen, short-circuited by a
// requested stage name and rendering whatever that stage produced as text.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/stackedboxes/sixc/pkg/codegen"
	"github.com/stackedboxes/sixc/pkg/lexer"
	"github.com/stackedboxes/sixc/pkg/parser"
	"github.com/stackedboxes/sixc/pkg/semantics"
	"github.com/stackedboxes/sixc/pkg/token"
)

// Stage names accepted by Run's stage parameter, matching the CLI's --stage
// flag.
const (
	StageLexer     = "lexer"
	StageParser    = "parser"
	StageSemantics = "semantics"
	StageAssembly  = "assembly"
)

// Result is what a pipeline run produced: the stage it actually stopped at,
// and that stage's printable artifact.
type Result struct {
	Stage    string
	Artifact string
}

// Run compiles source up through stage (one of the Stage* constants,
// defaulting to StageAssembly for anything else) and returns that stage's
// artifact. target selects the I/O routine flavor for the assembly stage;
// it's ignored for every earlier stage.
func Run(source, stage, target string) (*Result, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	if stage == StageLexer {
		return &Result{Stage: StageLexer, Artifact: dumpTokens(tokens)}, nil
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	if stage == StageParser {
		return &Result{Stage: StageParser, Artifact: tree.Dump()}, nil
	}

	if err := semantics.Build(tree); err != nil {
		return nil, fmt.Errorf("semantics: %w", err)
	}
	if stage == StageSemantics {
		return &Result{Stage: StageSemantics, Artifact: tree.Dump()}, nil
	}

	code, err := codegen.Generate(tree, target)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	return &Result{Stage: StageAssembly, Artifact: code}, nil
}

// dumpTokens renders a token stream one token per line, numbered, the
// format used by `--stage lexer`.
func dumpTokens(tokens []token.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		fmt.Fprintf(&b, "%4d: %s\n", i, t.String())
	}
	return b.String()
}

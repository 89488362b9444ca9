/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package parsetree defines the single uniform node type shared by the raw
// parse tree (pkg/parser's output) and the restructured AST (pkg/semantics's
// output): an n-ary tree whose nodes are tagged with a grammar.Symbol.
//
// A child slot that is syntactically present but semantically absent (the
// missing left operand of a unary operator, after it's reparented into a
// binary-shaped node during the lift pass) is represented the idiomatic Go
// way: a nil *Node, rather than a separate sentinel type.
package parsetree

import (
	"fmt"
	"strings"

	"github.com/stackedboxes/sixc/pkg/grammar"
	"github.com/stackedboxes/sixc/pkg/token"
)

// Node is one node of a parse tree or AST.
type Node struct {
	Sym      grammar.Symbol
	Tok      *token.Token // set when Sym.Terminal
	Children []*Node      // a nil entry marks an absent operand slot

	// IsOperator and Precedence are populated only for terminal nodes that
	// represent an operator. Precedence starts out as the operator's static
	// level (token.BasePrecedence/UnaryPrecedence) and is then adjusted in
	// place, per occurrence, by pkg/semantics (parenthesis offset, the
	// unary-minus bump) — it is never looked up from the shared table again
	// once set here.
	IsOperator bool
	Precedence int
}

// NewTerminal builds a leaf node for a consumed token, setting IsOperator
// and Precedence from the static table when tok.Kind is an operator.
func NewTerminal(tok token.Token) *Node {
	n := &Node{Sym: grammar.T(tok.Kind), Tok: &tok}
	if level, ok := token.Precedence(tok.Kind); ok {
		n.IsOperator = true
		n.Precedence = level
	}
	return n
}

// NewNonTerminal builds an interior node for non-terminal n with the given
// children (as already compacted by the parser).
func NewNonTerminal(n grammar.NonTerminal, children ...*Node) *Node {
	return &Node{Sym: grammar.NT(n), Children: children}
}

// IsAbsent reports whether a child slot is the "operand not supplied"
// sentinel, i.e. a nil node.
func IsAbsent(n *Node) bool { return n == nil }

// String renders a single node's own label (not its subtree).
func (n *Node) String() string {
	if n == nil {
		return "<absent>"
	}
	if n.Sym.Terminal {
		if n.Tok != nil {
			return n.Tok.String()
		}
		return n.Sym.String()
	}
	return n.Sym.String()
}

// Dump renders the full subtree as indented text, the format used by
// `--stage parser`.
func (n *Node) Dump() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n == nil {
		b.WriteString("<absent>\n")
		return
	}
	b.WriteString(n.String())
	if n.IsOperator {
		fmt.Fprintf(b, " [prec=%d]", n.Precedence)
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.dump(b, depth+1)
	}
}

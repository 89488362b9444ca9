/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package parser implements the table-free LL(2) recursive-descent parser:
// for every non-terminal, it tries the grammar's rules for that head in
// declaration order, committing to the first whose first one or two
// lookahead tokens are compatible with the rule's leading symbols. There is
// no separate parse table — eligibility is recomputed from grammar.Rules on
// every call, which is what makes the grammar's rule order load-bearing.
//
// Two tree-compaction steps happen as each non-terminal's recursive call
// returns: an epsilon match (zero children) is dropped from its parent's
// child list entirely, and a non-epsilon match with exactly one child has
// that child substituted in its own place, eliding the wrapper. Both rules
// apply uniformly, regardless of whether the lone child is itself a
// terminal or non-terminal node.
package parser

import (
	"fmt"

	"github.com/stackedboxes/sixc/pkg/grammar"
	"github.com/stackedboxes/sixc/pkg/parsetree"
	"github.com/stackedboxes/sixc/pkg/token"
)

// Error reports a syntax error: no rule for the current non-terminal was
// eligible given the lookahead tokens.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// maxDepth bounds recursive-descent nesting (expression and statement
// nesting alike), standing in for the Python original's
// sys.setrecursionlimit bump: rather than raising a ceiling and risking a
// stack overflow anyway, we fail with a SyntaxError once it's exceeded.
const maxDepth = 2000

// parser holds the token stream and current position.
type parser struct {
	tokens []token.Token
}

// Parse builds a parse tree from the given token stream, starting from the
// STATEMENT_LIST non-terminal. Parse itself does not check that every token
// was consumed. STATEMENT_LIST_NEXT commits to `; STATEMENT_LIST` whenever
// another token follows a semicolon, though, so any input after the last
// statement's semicolon is parsed as a further statement list, and a syntax
// error is reported if it is not one.
func Parse(tokens []token.Token) (*parsetree.Node, error) {
	p := &parser{tokens: tokens}
	root, _, err := p.build(grammar.StatementList, 0, 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// peek returns the token offset positions after idx, reporting false past
// the end of input. The lexer's closing KindEOF token counts as past the end.
func (p *parser) peek(idx, offset int) (token.Token, bool) {
	i := idx + offset
	if i < 0 || i >= len(p.tokens) || p.tokens[i].Kind == token.KindEOF {
		return token.Token{}, false
	}
	return p.tokens[i], true
}

// build parses one instance of non-terminal head starting at token index
// idx, returning the resulting (possibly-compacted) node and the index of
// the first unconsumed token.
func (p *parser) build(head grammar.NonTerminal, idx, depth int) (*parsetree.Node, int, error) {
	if depth > maxDepth {
		line, column := p.errorPosition(idx)
		return nil, idx, &Error{Message: "expression or statement nesting too deep", Line: line, Column: column}
	}

	for _, r := range grammar.ForHead(head) {
		if r.Epsilon {
			return parsetree.NewNonTerminal(head), idx, nil
		}

		if len(r.Body) > 0 {
			la0, ok := p.peek(idx, 0)
			if !ok {
				continue
			}
			if r.Body[0].Terminal && r.Body[0].TokenKind != la0.Kind {
				continue
			}
		}
		if len(r.Body) > 1 {
			la1, ok := p.peek(idx, 1)
			if !ok {
				continue
			}
			if r.Body[1].Terminal && r.Body[1].TokenKind != la1.Kind {
				continue
			}
		}

		node, newIdx, err := p.commit(head, r, idx, depth)
		if err != nil {
			return nil, idx, err
		}
		return node, newIdx, nil
	}

	line, column := p.errorPosition(idx)
	return nil, idx, &Error{
		Message: fmt.Sprintf("no production for %s matches the input here", head),
		Line:    line,
		Column:  column,
	}
}

// commit consumes the tokens/sub-trees for rule r's body, once a rule has
// been chosen as eligible.
func (p *parser) commit(head grammar.NonTerminal, r grammar.Rule, idx, depth int) (*parsetree.Node, int, error) {
	var children []*parsetree.Node
	cur := idx

	for _, sym := range r.Body {
		if sym.Terminal {
			tok, ok := p.peek(cur, 0)
			if !ok || tok.Kind != sym.TokenKind {
				line, column := p.errorPosition(cur)
				return nil, cur, &Error{
					Message: fmt.Sprintf("expected %s", sym.TokenKind),
					Line:    line, Column: column,
				}
			}
			children = append(children, parsetree.NewTerminal(tok))
			cur++
			continue
		}

		child, newIdx, err := p.build(sym.NonTerminal, cur, depth+1)
		if err != nil {
			return nil, cur, err
		}
		cur = newIdx

		switch len(child.Children) {
		case 0:
			// Epsilon: drop this wrapper entirely.
		case 1:
			children = append(children, child.Children[0])
		default:
			children = append(children, child)
		}
	}

	return parsetree.NewNonTerminal(head, children...), cur, nil
}

func (p *parser) errorPosition(idx int) (int, int) {
	if idx < len(p.tokens) {
		return p.tokens[idx].Line, p.tokens[idx].Column
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		return last.Line, last.Column
	}
	return 1, 1
}

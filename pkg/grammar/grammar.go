/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package grammar holds the (table-free, by design) LL(2) grammar consulted
// by pkg/parser: an ordered list of production rules, each naming a
// non-terminal head and a body of terminal and non-terminal symbols.
//
// The rule order matters: the parser tries rules for a given non-terminal
// in the order they appear here, committing to the first whose first one or
// two lookahead symbols match. A grammar with an actual parse table would
// not care about declaration order; this one, by construction, does.
package grammar

import "github.com/stackedboxes/sixc/pkg/token"

// NonTerminal identifies one of the grammar's non-terminal symbols.
type NonTerminal int

const (
	StatementList NonTerminal = iota
	StatementListNext
	Statement
	ElseClause
	ExpressionList
	ExpressionListNext
	GroupList
	GroupListNext
	Expression
	P1
	P2
	P3
	P4
	P5
	P6
	NextP0
	NextP1
	NextP2
	NextP3
	NextP4
	NextP5
	Value
)

var nonTerminalNames = map[NonTerminal]string{
	StatementList:      "STATEMENT_LIST",
	StatementListNext:  "STATEMENT_LIST_NEXT",
	Statement:          "STATEMENT",
	ElseClause:         "ELSE_CLAUSE",
	ExpressionList:     "EXPRESSION_LIST",
	ExpressionListNext: "EXPRESSION_LIST_NEXT",
	GroupList:          "GROUP_LIST",
	GroupListNext:      "GROUP_LIST_NEXT",
	Expression:         "EXPRESSION",
	P1:                 "P1",
	P2:                 "P2",
	P3:                 "P3",
	P4:                 "P4",
	P5:                 "P5",
	P6:                 "P6",
	NextP0:             "NEXT_P0",
	NextP1:             "NEXT_P1",
	NextP2:             "NEXT_P2",
	NextP3:             "NEXT_P3",
	NextP4:             "NEXT_P4",
	NextP5:             "NEXT_P5",
	Value:              "VALUE",
}

func (n NonTerminal) String() string {
	if name, ok := nonTerminalNames[n]; ok {
		return name
	}
	return "NonTerminal(?)"
}

// Symbol is a SymbolKind: a tagged value that is either a terminal (a
// token.Kind) or a non-terminal. Equality between two Symbols compares only
// their kind tag and the underlying value, never any associated token data.
type Symbol struct {
	Terminal    bool
	TokenKind   token.Kind
	NonTerminal NonTerminal
}

// T builds a terminal Symbol for the given token kind.
func T(k token.Kind) Symbol { return Symbol{Terminal: true, TokenKind: k} }

// NT builds a non-terminal Symbol.
func NT(n NonTerminal) Symbol { return Symbol{NonTerminal: n} }

func (s Symbol) String() string {
	if s.Terminal {
		return s.TokenKind.String()
	}
	return s.NonTerminal.String()
}

// Rule is one production: Head -> Body, or Head -> epsilon when Epsilon is
// set (in which case Body is empty and carries no meaning).
type Rule struct {
	Head    NonTerminal
	Body    []Symbol
	Epsilon bool
}

func rule(head NonTerminal, body ...Symbol) Rule {
	return Rule{Head: head, Body: body}
}

func epsilon(head NonTerminal) Rule {
	return Rule{Head: head, Epsilon: true}
}

// Rules is the ordered grammar table. Order mirrors the reference grammar
// this language was distilled from, rule for rule: statement lists, every
// statement shape, then the six-level expression precedence cascade ending
// in VALUE.
var Rules = []Rule{
	// Statement lists.
	rule(StatementList, NT(Statement), NT(StatementListNext)),
	rule(StatementListNext, T(token.KindSemicolon), NT(StatementList)),
	rule(StatementListNext, T(token.KindSemicolon)),

	// Statements.
	rule(Statement, T(token.KindVar), T(token.KindID), T(token.KindAssign), NT(Expression)),
	rule(Statement, T(token.KindID), T(token.KindAssign), NT(Expression)),

	rule(Statement, T(token.KindIf), NT(Expression), NT(Statement), NT(ElseClause)),
	rule(ElseClause, T(token.KindElse), NT(Statement)),
	epsilon(ElseClause),

	rule(Statement, T(token.KindWhile), NT(Expression), NT(Statement)),
	rule(Statement, T(token.KindDo), NT(Statement), T(token.KindWhile), NT(Expression)),

	rule(Statement, T(token.KindID), T(token.KindOpenBrace), NT(ExpressionList)),
	rule(ExpressionList, T(token.KindCloseBrace)),
	rule(ExpressionList, NT(Expression), NT(ExpressionListNext)),
	rule(ExpressionListNext, T(token.KindCloseBrace)),
	rule(ExpressionListNext, T(token.KindComma), NT(Expression), NT(ExpressionListNext)),

	rule(Statement, T(token.KindOpenCurly), NT(GroupList)),
	rule(GroupList, NT(Statement), NT(GroupListNext)),
	rule(GroupListNext, T(token.KindSemicolon), T(token.KindCloseCurly)),
	rule(GroupListNext, T(token.KindSemicolon), NT(GroupList)),

	rule(Statement, T(token.KindID), T(token.KindIncrement)),
	rule(Statement, T(token.KindID), T(token.KindDecrement)),

	// Expressions: the precedence cascade.
	rule(Expression, NT(P1), NT(NextP0)),
	rule(P1, NT(P2), NT(NextP1)),
	rule(P2, NT(P3), NT(NextP2)),
	rule(P3, NT(P4), NT(NextP3)),
	rule(P4, NT(P5), NT(NextP4)),
	rule(P5, NT(P6), NT(NextP5)),

	rule(P6, T(token.KindMinus), NT(Value)),
	rule(P6, T(token.KindBitNot), NT(Value)),
	rule(P6, T(token.KindLogicNot), NT(Value)),
	rule(P6, NT(Value)),

	// A call used as a value rather than a statement, e.g. `x = input() + 1`.
	rule(Value, T(token.KindID), T(token.KindOpenBrace), NT(ExpressionList), NT(NextP5)),

	rule(Value, T(token.KindID), T(token.KindIncrement), NT(NextP5)),
	rule(Value, T(token.KindLiteral), T(token.KindIncrement), NT(NextP5)),
	rule(Value, T(token.KindOpenBrace), T(token.KindIncrement), NT(Expression), T(token.KindCloseBrace), NT(NextP5)),
	rule(Value, T(token.KindID), T(token.KindDecrement), NT(NextP5)),
	rule(Value, T(token.KindLiteral), T(token.KindDecrement), NT(NextP5)),
	rule(Value, T(token.KindOpenBrace), T(token.KindDecrement), NT(Expression), T(token.KindCloseBrace), NT(NextP5)),

	rule(Value, T(token.KindID), NT(NextP5)),
	rule(Value, T(token.KindLiteral), NT(NextP5)),
	rule(Value, T(token.KindOpenBrace), NT(Expression), T(token.KindCloseBrace), NT(NextP5)),

	rule(NextP0, T(token.KindGreaterThan), NT(Expression)),
	rule(NextP0, T(token.KindGreaterThanEquals), NT(Expression)),
	rule(NextP0, T(token.KindLessThan), NT(Expression)),
	rule(NextP0, T(token.KindLessThanEquals), NT(Expression)),
	epsilon(NextP0),

	rule(NextP1, T(token.KindEqual), NT(P1)),
	rule(NextP1, T(token.KindNotEqual), NT(P1)),
	epsilon(NextP1),

	rule(NextP2, T(token.KindLogicAnd), NT(P2)),
	rule(NextP2, T(token.KindLogicOr), NT(P2)),
	rule(NextP2, T(token.KindLogicXor), NT(P2)),
	epsilon(NextP2),

	rule(NextP3, T(token.KindBitAnd), NT(P3)),
	rule(NextP3, T(token.KindBitOr), NT(P3)),
	rule(NextP3, T(token.KindBitNot), NT(P3)),
	epsilon(NextP3),

	rule(NextP4, T(token.KindShiftLeft), NT(P4)),
	rule(NextP4, T(token.KindShiftRight), NT(P4)),
	epsilon(NextP4),

	rule(NextP5, T(token.KindPlus), NT(P5)),
	rule(NextP5, T(token.KindMinus), NT(P5)),
	epsilon(NextP5),
}

// ForHead returns, in declared order, the subset of Rules whose Head is n.
func ForHead(n NonTerminal) []Rule {
	var out []Rule
	for _, r := range Rules {
		if r.Head == n {
			out = append(out, r)
		}
	}
	return out
}

package models

import (
	"strings"
	"time"
)

// Operator is the boolean role a keyword plays in rule evaluation.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
	OperatorNot Operator = "NOT"
)

// ParseOperator normalizes case and reports whether the value is known.
func ParseOperator(s string) (Operator, bool) {
	op := Operator(strings.ToUpper(strings.TrimSpace(s)))
	switch op {
	case OperatorAnd, OperatorOr, OperatorNot:
		return op, true
	}
	return "", false
}

// KeywordRule is a single owner-defined matching term.
type KeywordRule struct {
	ID         string    `db:"id" json:"id"`
	OwnerID    string    `db:"user_id" json:"owner_id"`
	Term       string    `db:"keyword" json:"term"`
	Operator   Operator  `db:"operator" json:"operator"`
	Active     bool      `db:"active" json:"active"`
	MatchCount int64     `db:"match_count" json:"match_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

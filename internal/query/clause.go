// Package query implements the generic document filter engine: single-clause
// evaluation, AND/OR composition, and the collection-level query service the
// auth storage adapter runs on.
package query

import (
	"strings"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// Operator is a filter predicate operator.
type Operator string

const (
	OpEq         Operator = "eq"
	OpNe         Operator = "ne"
	OpLt         Operator = "lt"
	OpLte        Operator = "lte"
	OpGt         Operator = "gt"
	OpGte        Operator = "gte"
	OpIn         Operator = "in"
	OpNotIn      Operator = "not_in"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "starts_with"
	OpEndsWith   Operator = "ends_with"
)

// Connector joins a clause with the cumulative result of all prior clauses.
type Connector string

const (
	ConnectorAnd Connector = "AND"
	ConnectorOr  Connector = "OR"
)

// Clause is one filter condition. An empty Operator means eq; an empty
// Connector means AND. The first clause's connector is irrelevant.
type Clause struct {
	Field     string         `json:"field"`
	Operator  Operator       `json:"operator,omitempty"`
	Value     docstore.Value `json:"value"`
	Connector Connector      `json:"connector,omitempty"`
}

// Evaluate applies a single clause to a document field. It is total: a clause
// whose value kind disagrees with the operator's required kind evaluates to
// false, never an error. Unknown operators evaluate to false.
func Evaluate(doc docstore.Document, clause Clause) bool {
	fieldValue := doc.Get(clause.Field)
	value := clause.Value

	operator := clause.Operator
	if operator == "" {
		operator = OpEq
	}

	switch operator {
	case OpEq:
		return fieldValue.Equal(value)
	case OpNe:
		return !fieldValue.Equal(value)
	case OpLt:
		f, n, ok := numericOperands(fieldValue, value)
		return ok && f < n
	case OpLte:
		f, n, ok := numericOperands(fieldValue, value)
		return ok && f <= n
	case OpGt:
		f, n, ok := numericOperands(fieldValue, value)
		return ok && f > n
	case OpGte:
		f, n, ok := numericOperands(fieldValue, value)
		return ok && f >= n
	case OpIn:
		return value.Contains(fieldValue)
	case OpNotIn:
		switch value.Kind() {
		case docstore.KindStringArray, docstore.KindNumberArray:
			return !value.Contains(fieldValue)
		}
		return false
	case OpContains:
		f, s, ok := stringOperands(fieldValue, value)
		return ok && strings.Contains(f, s)
	case OpStartsWith:
		f, s, ok := stringOperands(fieldValue, value)
		return ok && strings.HasPrefix(f, s)
	case OpEndsWith:
		f, s, ok := stringOperands(fieldValue, value)
		return ok && strings.HasSuffix(f, s)
	default:
		return false
	}
}

// Matches combines an ordered clause list into one boolean decision via a
// strict left fold: the accumulator is AND-ed or OR-ed with each clause in
// turn, with no operator precedence, no grouping, and no short-circuit skip.
// Every clause is evaluated even when the accumulator is already determined.
// An empty list matches everything.
func Matches(doc docstore.Document, clauses []Clause) bool {
	if len(clauses) == 0 {
		return true
	}

	result := Evaluate(doc, clauses[0])
	for _, clause := range clauses[1:] {
		clauseResult := Evaluate(doc, clause)
		if clause.Connector == ConnectorOr {
			result = result || clauseResult
		} else {
			result = result && clauseResult
		}
	}
	return result
}

func numericOperands(field, value docstore.Value) (float64, float64, bool) {
	f, ok := field.AsNumber()
	if !ok {
		return 0, 0, false
	}
	n, ok := value.AsNumber()
	if !ok {
		return 0, 0, false
	}
	return f, n, true
}

func stringOperands(field, value docstore.Value) (string, string, bool) {
	f, ok := field.AsString()
	if !ok {
		return "", "", false
	}
	s, ok := value.AsString()
	if !ok {
		return "", "", false
	}
	return f, s, true
}

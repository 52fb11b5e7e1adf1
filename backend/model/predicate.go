package model

import (
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var allowedOperators = map[string]struct{}{
	"=":  {},
	"!=": {},
	"<":  {},
	"<=": {},
	">":  {},
	">=": {},
}

// Predicate is a single column comparison, e.g. pack_id = 7.
type Predicate struct {
	Field    string
	Operator string
	Value    any
}

// Where builds a Predicate.
func Where(field, operator string, value any) Predicate {
	return Predicate{Field: field, Operator: operator, Value: value}
}

func (p Predicate) clause() (string, error) {
	if !identifierPattern.MatchString(p.Field) {
		return "", fmt.Errorf("invalid predicate field %q", p.Field)
	}
	if _, ok := allowedOperators[p.Operator]; !ok {
		return "", fmt.Errorf("invalid predicate operator %q", p.Operator)
	}
	return p.Field + " " + p.Operator + " ?", nil
}

func applyPredicates(tx *gorm.DB, predicates []Predicate) (*gorm.DB, error) {
	for _, p := range predicates {
		clause, err := p.clause()
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause, p.Value)
	}
	return tx, nil
}

func validateColumns(columns []string) error {
	for _, column := range columns {
		if !identifierPattern.MatchString(column) {
			return fmt.Errorf("invalid column %q", column)
		}
	}
	return nil
}

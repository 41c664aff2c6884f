// notebox/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the anticipated business-rule violations raised by
// the create path. Anything outside this set is an infrastructure failure.
type Kind string

const (
	KindParameterRequired      Kind = "ParameterRequired"
	KindValueTooLong           Kind = "ValueTooLong"
	KindAuthorizationViolation Kind = "AuthorizationViolation"
)

// RuleError is a named business-rule violation with the context the boundary
// needs to build a client error (field name, length limit, reason).
type RuleError struct {
	Kind   Kind
	Field  string
	Limit  int
	Reason string
}

func (e *RuleError) Error() string {
	switch e.Kind {
	case KindParameterRequired:
		return fmt.Sprintf("parameter required: %s", e.Field)
	case KindValueTooLong:
		return fmt.Sprintf("value too long: %s exceeds %d characters", e.Field, e.Limit)
	case KindAuthorizationViolation:
		return e.Reason
	}
	return string(e.Kind)
}

func ParameterRequired(field string) *RuleError {
	return &RuleError{Kind: KindParameterRequired, Field: field}
}

func ValueTooLong(field string, limit int) *RuleError {
	return &RuleError{Kind: KindValueTooLong, Field: field, Limit: limit}
}

func AuthorizationViolation(reason string) *RuleError {
	return &RuleError{Kind: KindAuthorizationViolation, Reason: reason}
}

// AsRuleError reports whether err (or anything it wraps) is a business-rule
// violation.
func AsRuleError(err error) (*RuleError, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

package serializer

import "fmt"

var ErrUnknownField = fmt.Errorf("unknown field")
var ErrUnresolvedRule = fmt.Errorf("unresolved rule reference")
var ErrKindMismatch = fmt.Errorf("field kind mismatch")
var ErrConversion = fmt.Errorf("conversion error")
var ErrNotTerminating = fmt.Errorf("rule graph does not terminate")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewUnknownFieldError reports a configuration error: a rule names a
// field or relationship that does not exist on the entity type.
func NewUnknownFieldError(entityType, field string) error {
	return &myError{
		msg:    fmt.Sprintf("rule names unknown field \"%s\" on entity type %s", field, entityType),
		target: ErrUnknownField,
	}
}

// NewUnresolvedRuleError reports a configuration error: a deferred rule
// reference could not be resolved at the time it was needed.
func NewUnresolvedRuleError(entityType string) error {
	return &myError{
		msg:    fmt.Sprintf("no default rule registered for entity type %s", entityType),
		target: ErrUnresolvedRule,
	}
}

func NewKindMismatchError(entityType, field string, want, got fmt.Stringer) error {
	return &myError{
		msg:    fmt.Sprintf("field \"%s\" on entity type %s: rule declares kind %s but value is of kind %s", field, entityType, want, got),
		target: ErrKindMismatch,
	}
}

// NewConversionError ties a failed value conversion to the specific
// field and entity id it occurred on.
func NewConversionError(entityType string, entityID int64, field string, cause error) error {
	return &myError{
		msg:    fmt.Sprintf("failed to convert field \"%s\" on %s with id %d: %s", field, entityType, entityID, cause.Error()),
		target: ErrConversion,
	}
}

func NewNotTerminatingError(entityType string, depth int) error {
	return &myError{
		msg:    fmt.Sprintf("serialization of %s exceeded the maximum nesting depth %d", entityType, depth),
		target: ErrNotTerminating,
	}
}

package plan

import "fmt"

// ValidationError represents a single invalid step field.
type ValidationError struct {
	Step   int    // 1-based position in the plan
	Field  string // Field name
	Reason string // Human-readable reason for failure
	Value  string // The offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("step %d: field %q: %s", e.Step, e.Field, e.Reason)
	}
	return fmt.Sprintf("step %d: field %q: %s (got %q)", e.Step, e.Field, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}

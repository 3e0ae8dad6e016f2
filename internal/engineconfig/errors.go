package engineconfig

import "fmt"

// ConfigurationError reports a tunable whose value cannot be used.
// Degenerate values are rejected instead of clamped; callers match with errors.As.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Invalid returns a *ConfigurationError for field.
func Invalid(field string, value any, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

package rappor

import "fmt"

// ConfigError indicates a malformed or out-of-range parameter set.
// It is reported eagerly at construction or parse time; Encode itself has
// no error path once the configuration is valid.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Field  string
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rappor: invalid config: %s", e.Reason)
	}
	return fmt.Sprintf("rappor: invalid config field %q: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.cause }

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func configErrorWrap(field string, cause error, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...), cause: cause}
}

package shade

import "fmt"

// ConfigError is returned when a gradient description cannot be used, for
// example because it has fewer than two stops or its locations decrease.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid gradient %s: %s", e.Field, e.Message)
}

// Is makes every ConfigError match errors.Is(err, &ConfigError{}).
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

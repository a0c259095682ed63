package reportconfig

import (
	"strings"

	"github.com/pkg/errors"
)

// MultiError collects validation errors.
type MultiError struct {
	Errors []error
}

// Collect appends err unless it is nil.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty reports whether no error was collected.
func (m MultiError) Empty() bool {
	return len(m.Errors) == 0
}

func (m MultiError) Error() string {
	messages := make([]string, 0, len(m.Errors))
	for _, err := range m.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

// IsNotEmpty returns an error if value is empty.
func IsNotEmpty(value, key string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Errorf("value for %s cannot be empty", key)
	}
	return nil
}

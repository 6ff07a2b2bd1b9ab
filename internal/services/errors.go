package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harentsoaR/carewave-api/internal/store"
)

// NotFoundError reports that the requested Entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ValidationError reports input the caller must fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError reports rejected credentials or tokens.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

var ErrMailerDisabled = errors.New("email delivery is not configured")

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// notFound converts store.ErrNotFound into a NotFoundError for entity and
// passes any other error through.
func notFound(err error, entity string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}

// requiredField is one entry checked by requireInput.
type requiredField struct {
	name    string
	present bool
}

func text(name, value string) requiredField {
	return requiredField{name: name, present: strings.TrimSpace(value) != ""}
}

func number[T int | float64](name string, value *T) requiredField {
	return requiredField{name: name, present: value != nil}
}

// requireInput returns a ValidationError naming every absent field, in order.
func requireInput(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// requireFields is requireInput for plain string fields.
func requireFields(fields ...[2]string) error {
	checked := make([]requiredField, 0, len(fields))
	for _, f := range fields {
		checked = append(checked, text(f[0], f[1]))
	}
	return requireInput(checked...)
}

// notBlank rejects an update that would clear a required field.
func notBlank(name string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return invalid("%s cannot be empty", name)
	}
	return nil
}

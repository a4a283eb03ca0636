// Package validation wraps go-playground/validator with the project's error
// conventions: failures are reported as common.ErrorValidation together with
// the list of offending fields.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("maxbytes", maxBytes)
		// report json names so messages match the wire format
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

// PasswordMaxBytes is the longest password bcrypt accepts.
const PasswordMaxBytes = 72

// maxBytes implements `maxbytes=N`: the string's UTF-8 length is at most N
// bytes. The built-in max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// FieldError describes one failed rule.
type FieldError struct {
	Field string
	Rule  string
}

// Error is returned by Struct. It matches common.ErrorValidation via errors.Is.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+":"+f.Rule)
	}
	return fmt.Sprintf("%s: %s", common.ErrorValidation, strings.Join(parts, ", "))
}

func (e *Error) Is(target error) bool {
	return target == common.ErrorValidation
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

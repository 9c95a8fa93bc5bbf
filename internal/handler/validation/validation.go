package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// Register installs the custom tags on gin's validator engine. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("role", validRole)
	})
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "client", "manager", "admin":
		return true
	}
	return false
}

// Details turns a binding error into one message per invalid field. Errors that did not come
// from the validator (malformed JSON, wrong types) yield nil.
func Details(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, pretty(e))
	}
	return out
}

func pretty(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "notblank":
		return e.Field() + " must not be blank"
	case "email":
		return e.Field() + " must be a valid email"
	case "role":
		return e.Field() + " must be client, manager or admin"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at least %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at most %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", e.Field(), e.Param())
	default:
		return e.Error()
	}
}

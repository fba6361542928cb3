package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// UseJSONFieldNames makes validator report fields by their json name.
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// BindJSON decodes the body into dst and converts binding failures into a
// *ValidationError with one message per offending field.
func BindJSON(c *gin.Context, dst interface{}) error {
	UseJSONFieldNames()
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateBindingError(err, dst)
	}
	return nil
}

func TranslateBindingError(err error, dst interface{}) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError("body", "Invalid request format")
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), fieldMessage(fe, dst))
	}
	return out
}

func fieldMessage(fe validator.FieldError, dst interface{}) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte", "lte", "min", "max":
		if lo, hi, ok := boundsOf(dst, fe.StructField()); ok {
			return fmt.Sprintf("%s must be between %s and %s", field, lo, hi)
		}
		if fe.Tag() == "gte" || fe.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// boundsOf reads both ends of a gte/lte (or min/max) pair from the binding tag.
func boundsOf(dst interface{}, structField string) (string, string, bool) {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", "", false
	}
	sf, ok := t.FieldByName(structField)
	if !ok {
		return "", "", false
	}

	var lo, hi string
	for _, rule := range strings.Split(sf.Tag.Get("binding"), ",") {
		k, v, found := strings.Cut(rule, "=")
		if !found {
			continue
		}
		switch k {
		case "gte", "min":
			lo = v
		case "lte", "max":
			hi = v
		}
	}
	return lo, hi, lo != "" && hi != ""
}

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Register installs the clinic tags on gin's validator:
//
//	clock    "HH:MM" or "HH:MM:SS"
//	isodate  "YYYY-MM-DD"
//
// Field names in errors follow the json tag.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: gin binding engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("clock", validClock); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", validDate)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validClock(fl validator.FieldLevel) bool {
	_, ok := domain.NormalizeClock(fl.Field().String())
	return ok
}

func validDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

// FromBinding turns a gin binding error into a ValidationError on the first
// offending field.
func FromBinding(err error) httperr.ValidationError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return httperr.ValidationError{Field: fe.Field(), Reason: reason(fe)}
	}
	return httperr.ValidationError{Field: "body", Reason: "malformed request body"}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "clock":
		return "must be HH:MM"
	case "isodate":
		return "must be YYYY-MM-DD"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("finite", validateFinite)
	_ = v.RegisterValidation("activity_factor", validateOneOfFloat(ActivityFactors))
	_ = v.RegisterValidation("protein_per_kg", validateOneOfFloat(ProteinTargets))
	return v
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateOneOfFloat(allowed []float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		for _, a := range allowed {
			if math.Abs(f-a) < 1e-9 {
				return true
			}
		}
		return false
	}
}

// ValidateProfile checks body metrics against the accepted ranges.
func ValidateProfile(p model.Profile) error {
	return toInvalidProfile(validate.Struct(p))
}

// ValidateTargetsInput checks the profile and the activity, goal and
// protein selections.
func ValidateTargetsInput(in model.TargetsInput) error {
	return toInvalidProfile(validate.Struct(in))
}

func toInvalidProfile(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &InvalidProfileError{Fields: []string{err.Error()}}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describeFieldError(fe))
	}
	return &InvalidProfileError{Fields: fields}
}

func describeFieldError(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number", name)
	case "gte", "lte":
		return fmt.Sprintf("%s %v out of range", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "activity_factor":
		return fmt.Sprintf("activity must be one of: %s", joinFloats(ActivityFactors))
	case "protein_per_kg":
		return fmt.Sprintf("protein must be one of: %s", joinFloats(ProteinTargets))
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}

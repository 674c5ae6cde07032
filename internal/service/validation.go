package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "club-shifts-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports fields by their json names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and converts the first failing field into a
// ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("validation failed on '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s=%s", msg, fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return fmt.Errorf("validation failed: %w", err)
}

// normalizePagination applies the default page size for lists
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

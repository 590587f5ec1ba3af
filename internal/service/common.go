package service

import (
	"time"

	apperrors "projecthub-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// simulatedDelay reproduces the latency of a real backend before any store
// access. Zero disables it; the mock path has no cancellation or timeout.
type simulatedDelay struct {
	latency time.Duration
}

func (d simulatedDelay) delay() {
	if d.latency > 0 {
		time.Sleep(d.latency)
	}
}

// validateStruct maps the first validator failure onto the error taxonomy
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return apperrors.NewValidationError(errs[0].Field(), "failed on '"+errs[0].Tag()+"' validation")
	}
	return apperrors.NewValidationError("", err.Error())
}

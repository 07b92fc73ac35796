package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// NewValidator returns a validator with the record-specific tags registered:
// isodate (YYYY-MM-DD), reqstatus and validity.
func NewValidator() *validator.Validate {
	return registerRecordValidations(validator.New())
}

func registerRecordValidations(v *validator.Validate) *validator.Validate {
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("reqstatus", func(fl validator.FieldLevel) bool {
		return models.RequestStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("validity", func(fl validator.FieldLevel) bool {
		return models.EvidenceValidity(fl.Field().String()).Valid()
	})
	return v
}

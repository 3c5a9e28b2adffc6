package translationscmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	validateTranslationsMessageType = "kalcufy.translations.validate"
	generateTemplateMessageType     = "kalcufy.translations.template"
	invalidateCacheMessageType      = "kalcufy.translations.invalidate"
)

// ValidateTranslationsCommand requests a completeness check of every locale
// file for one calculator.
type ValidateTranslationsCommand struct {
	CalculatorID string `json:"calculator_id"`
}

// Type implements command.Message.
func (ValidateTranslationsCommand) Type() string { return validateTranslationsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ValidateTranslationsCommand) Validate() error {
	errs := validation.Errors{}
	if m.CalculatorID == "" {
		errs["calculator_id"] = validation.NewError("kalcufy.translations.validate.calculator_id_required", "calculator_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateTemplateCommand requests a translation template for one calculator
// and locale, carrying existing values forward and marking gaps.
type GenerateTemplateCommand struct {
	CalculatorID string `json:"calculator_id"`
	Locale       string `json:"locale"`
}

// Type implements command.Message.
func (GenerateTemplateCommand) Type() string { return generateTemplateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m GenerateTemplateCommand) Validate() error {
	errs := validation.Errors{}
	if m.CalculatorID == "" {
		errs["calculator_id"] = validation.NewError("kalcufy.translations.template.calculator_id_required", "calculator_id is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("kalcufy.translations.template.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InvalidateCacheCommand evicts cached translation files for a calculator.
// An empty locale evicts every locale of that calculator.
type InvalidateCacheCommand struct {
	CalculatorID string `json:"calculator_id"`
	Locale       string `json:"locale,omitempty"`
}

// Type implements command.Message.
func (InvalidateCacheCommand) Type() string { return invalidateCacheMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m InvalidateCacheCommand) Validate() error {
	errs := validation.Errors{}
	if m.CalculatorID == "" {
		errs["calculator_id"] = validation.NewError("kalcufy.translations.invalidate.calculator_id_required", "calculator_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

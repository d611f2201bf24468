// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/tomtom215/intentpulse/internal/models"
)

var (
	validate   *validator.Validate
	translator ut.Translator
	setupOnce  sync.Once
)

// customMessages are English messages for the tags registered here, plus
// "required" reworded to match the rest of the API.
var customMessages = map[string]string{
	"required":  "{0} is required",
	"modelname": "{0} must be one of: xgboost, random_forest, logistic, ensemble",
	"dashview":  "{0} must be one of: dashboard, predictor, history, monitoring",
}

// GetValidator returns the process-wide validator.
//
// Custom tags:
//   - modelname: one of the scoring service's model names
//   - dashview: one of the presentation views
//
// Field names in errors come from the json tag so messages match the wire
// format the client sent.
func GetValidator() *validator.Validate {
	setupOnce.Do(setup)
	return validate
}

func setup() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("modelname", func(fl validator.FieldLevel) bool {
		return models.IsValidModel(fl.Field().String())
	})
	_ = validate.RegisterValidation("dashview", func(fl validator.FieldLevel) bool {
		return models.View(fl.Field().String()).Valid()
	})

	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	for tag, text := range customMessages {
		_ = validate.RegisterTranslation(tag, translator,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(fe.Tag(), fe.Field())
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
	}
}

// ValidateStruct validates s. It returns nil or the collected field errors.
func ValidateStruct(s interface{}) *RequestValidationError {
	return convert(GetValidator().Struct(s))
}

// ValidateVar validates a single value against tag, reporting failures
// under field.
//
//	if verr := validation.ValidateVar(name, "model_name", "required,modelname"); verr != nil { ... }
func ValidateVar(value interface{}, field, tag string) *RequestValidationError {
	return convert(GetValidator().VarWithKey(field, value, tag))
}

func convert(err error) *RequestValidationError {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: fe.Translate(translator),
		}
	}
	return &RequestValidationError{errors: out}
}

// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Messages come from the validator's English translations, with
// the custom tags and "required" registered on top. Failures are returned as
// *RequestValidationError, which the API layer converts to its
// VALIDATION_ERROR envelope via ToAPIError:
//
//	if verr := validation.ValidateStruct(&features); verr != nil {
//	    respondValidationError(w, r, verr)
//	    return
//	}
package validation

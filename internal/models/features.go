// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// Visitor types accepted by the scoring service.
const (
	VisitorReturning = "Returning_Visitor"
	VisitorNew       = "New_Visitor"
	VisitorOther     = "Other"
)

// Months lists the month codes used by the online shoppers dataset.
// June is spelled out in the dataset; every other month is a three-letter code.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "June", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// SessionFeatures is the feature vector sent to the scoring service.
// JSON keys match the column names the models were trained on.
type SessionFeatures struct {
	Administrative   int     `json:"Administrative" validate:"min=0"`
	Informational    int     `json:"Informational" validate:"min=0"`
	ProductRelated   int     `json:"ProductRelated" validate:"min=0"`
	BounceRates      float64 `json:"BounceRates" validate:"min=0,max=1"`
	PageValues       float64 `json:"PageValues" validate:"min=0"`
	SpecialDay       float64 `json:"SpecialDay" validate:"min=0,max=1"`
	Month            string  `json:"Month" validate:"required,oneof=Jan Feb Mar Apr May June Jun Jul Aug Sep Oct Nov Dec"`
	OperatingSystems int     `json:"OperatingSystems" validate:"min=1"`
	Browser          int     `json:"Browser" validate:"min=1"`
	Region           int     `json:"Region" validate:"min=1"`
	TrafficType      int     `json:"TrafficType" validate:"min=1"`
	VisitorType      string  `json:"VisitorType" validate:"required,oneof=Returning_Visitor New_Visitor Other"`
	Weekend          bool    `json:"Weekend"`
}

// DefaultSessionFeatures returns the feature vector the predictor form starts with.
func DefaultSessionFeatures() SessionFeatures {
	return SessionFeatures{
		Administrative:   0,
		Informational:    0,
		ProductRelated:   10,
		BounceRates:      0.05,
		PageValues:       15.0,
		SpecialDay:       0.0,
		Month:            "Nov",
		OperatingSystems: 2,
		Browser:          2,
		Region:           1,
		TrafficType:      2,
		VisitorType:      VisitorReturning,
		Weekend:          false,
	}
}

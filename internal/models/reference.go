// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// WeekdayPerformance is one bar of the static weekly performance chart.
type WeekdayPerformance struct {
	Day         string `json:"day"`
	Predictions int    `json:"predictions"`
	Conversions int    `json:"conversions"`
	Revenue     int    `json:"revenue"`
}

// IntentShare is one slice of the intent distribution chart.
type IntentShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ModelPerformance holds offline evaluation scores for one model.
type ModelPerformance struct {
	Model    string  `json:"model"`
	Accuracy float64 `json:"accuracy"`
	Recall   float64 `json:"recall"`
}

// ReferenceCharts is the fixed chart data shown beside the live counters.
type ReferenceCharts struct {
	Weekly          []WeekdayPerformance `json:"weekly"`
	IntentShares    []IntentShare        `json:"intent_distribution"`
	ModelComparison []ModelPerformance   `json:"model_comparison"`
}

// DefaultReferenceCharts returns the built-in chart data.
func DefaultReferenceCharts() ReferenceCharts {
	return ReferenceCharts{
		Weekly: []WeekdayPerformance{
			{Day: "Mon", Predictions: 45, Conversions: 32, Revenue: 1280},
			{Day: "Tue", Predictions: 52, Conversions: 38, Revenue: 1520},
			{Day: "Wed", Predictions: 48, Conversions: 35, Revenue: 1400},
			{Day: "Thu", Predictions: 61, Conversions: 44, Revenue: 1760},
			{Day: "Fri", Predictions: 55, Conversions: 41, Revenue: 1640},
			{Day: "Sat", Predictions: 38, Conversions: 25, Revenue: 1000},
			{Day: "Sun", Predictions: 42, Conversions: 28, Revenue: 1120},
		},
		IntentShares: []IntentShare{
			{Name: "High", Value: 35},
			{Name: "Medium", Value: 45},
			{Name: "Low", Value: 20},
		},
		ModelComparison: []ModelPerformance{
			{Model: "XGBoost", Accuracy: 86.5, Recall: 77.6},
			{Model: "Random Forest", Accuracy: 88.3, Recall: 58.9},
			{Model: "Logistic", Accuracy: 86.8, Recall: 81.1},
		},
	}
}

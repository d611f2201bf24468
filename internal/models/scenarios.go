// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// ScenarioOverrides holds the subset of features an example scenario sets.
// Nil fields leave the base value untouched.
type ScenarioOverrides struct {
	ProductRelated *int     `json:"ProductRelated,omitempty"`
	PageValues     *float64 `json:"PageValues,omitempty"`
	BounceRates    *float64 `json:"BounceRates,omitempty"`
	VisitorType    *string  `json:"VisitorType,omitempty"`
	Month          *string  `json:"Month,omitempty"`
}

// Scenario is a named preset the predictor form can load.
type Scenario struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Overrides ScenarioOverrides `json:"data"`
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

// ExampleScenarios returns the built-in presets in display order.
func ExampleScenarios() []Scenario {
	return []Scenario{
		{
			ID:   "high-intent",
			Name: "High Intent",
			Overrides: ScenarioOverrides{
				ProductRelated: intPtr(25),
				PageValues:     floatPtr(45.0),
				BounceRates:    floatPtr(0.01),
				VisitorType:    stringPtr(VisitorReturning),
				Month:          stringPtr("Nov"),
			},
		},
		{
			ID:   "browser",
			Name: "Browser",
			Overrides: ScenarioOverrides{
				ProductRelated: intPtr(3),
				PageValues:     floatPtr(0),
				BounceRates:    floatPtr(0.3),
				VisitorType:    stringPtr(VisitorNew),
				Month:          stringPtr("Feb"),
			},
		},
		{
			ID:   "average",
			Name: "Average",
			Overrides: ScenarioOverrides{
				ProductRelated: intPtr(12),
				PageValues:     floatPtr(18.0),
				BounceRates:    floatPtr(0.05),
				VisitorType:    stringPtr(VisitorReturning),
				Month:          stringPtr("May"),
			},
		},
	}
}

// FindScenario looks up a preset by ID.
func FindScenario(id string) (Scenario, bool) {
	for _, s := range ExampleScenarios() {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// ApplyScenario overlays the scenario's overrides onto base and returns the result.
// base is passed by value and never modified.
func ApplyScenario(base SessionFeatures, s Scenario) SessionFeatures {
	o := s.Overrides
	if o.ProductRelated != nil {
		base.ProductRelated = *o.ProductRelated
	}
	if o.PageValues != nil {
		base.PageValues = *o.PageValues
	}
	if o.BounceRates != nil {
		base.BounceRates = *o.BounceRates
	}
	if o.VisitorType != nil {
		base.VisitorType = *o.VisitorType
	}
	if o.Month != nil {
		base.Month = *o.Month
	}
	return base
}

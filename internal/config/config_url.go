// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validateBaseURL checks a service base URL that endpoint paths such as
// /predict and /metrics are appended to. A path prefix is allowed for
// services behind a gateway; query strings and fragments are not.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	case u.Host == "":
		return errors.New("host is required")
	case u.RawQuery != "" || u.ForceQuery:
		return errors.New("query parameters are not allowed")
	case u.Fragment != "":
		return errors.New("fragments are not allowed")
	}
	return nil
}

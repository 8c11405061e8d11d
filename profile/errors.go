// SPDX-License-Identifier: MIT
// Package: fairdiv/profile
//
// errors.go — sentinel errors for preference files and scenarios.

package profile

import "errors"

var (
	// ErrMalformedLine is returned when a data line parses under neither the
	// interval nor the item format (or not under the forced one).
	ErrMalformedLine = errors.New("profile: malformed line")

	// ErrEmptyProfile is returned when a preference file holds no data lines.
	ErrEmptyProfile = errors.New("profile: no data lines")

	// ErrUnknownKind is returned for a resource kind name that cake does not define.
	ErrUnknownKind = errors.New("profile: unknown resource kind")

	// ErrUnsupportedPreference is returned by WritePreference for preferences
	// that have no line format (function-backed densities, capped counted
	// preferences).
	ErrUnsupportedPreference = errors.New("profile: preference has no file format")

	// ErrInvalidScenario is returned by Scenario.Validate.
	ErrInvalidScenario = errors.New("profile: invalid scenario")
)

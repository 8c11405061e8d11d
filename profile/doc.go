// SPDX-License-Identifier: MIT

// Package profile loads participants and whole division runs from files.
//
// Two formats are supported:
//
//   - Preference files: one entry per line, either density points
//     ("<x> <y>") or item values ("<item> <value>"). ParsePreference detects
//     the format, ParsePreferenceAs forces it, WritePreference emits it.
//   - Scenarios: YAML documents naming a protocol, a seed, the resource and
//     each participant's valuation. Scenario.Divider returns a ready
//     divide.Divider.
//
// All numbers are parsed exactly; write "1/3" rather than 0.333.
package profile

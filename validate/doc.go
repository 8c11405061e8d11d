// SPDX-License-Identifier: MIT

// Package validate checks completed divisions for the classic fairness
// properties.
//
// Checks:
//   - IsProportional: every participant gets at least 1/n of its own
//     valuation of the whole.
//   - IsEnvyFree: nobody values another share above its own (Envy lists
//     the offending pairs).
//   - IsEquitable: every participant realizes the same own-value.
//   - IsConserving: the shares partition the whole (actual value adds up).
//
// Check runs all four and returns a Report; Report.Meets compares it with a
// divider's declared Settings.
//
// Checks are exact by default. Protocols on span resources locate cuts to
// within 1/Resolution, so pass WithTolerance(cake.R(k, R)) when auditing them.
//
//	div, _ := divide.NewDubinsSpanier(users, whole).Divide()
//	r := validate.Check(div, validate.WithTolerance(cake.R(1, 100)))
//	fmt.Println(r.Proportional, r.Meets(divider.Settings()))
package validate

// Package fairdiv is an exact-arithmetic toolkit for fair division: cutting
// cakes, splitting estates and dealing out indivisible goods so that every
// participant can prove it was treated fairly.
//
// 🚀 What is fairdiv?
//
//	A small, deterministic library that brings together:
//		• Resources: continuous strips, interval sets, counted piles, item collections
//		• Preferences: densities, piecewise-linear profiles, item values, rankings
//		• Piece finding: exact discrete search, Stern–Brocot search on cuts
//		• Protocols: divide-and-choose, last diminisher, Dubins–Spanier,
//		  sealed bids (Knaster), adjusted winner, alternation, lone chooser
//		• Audits: proportional, envy-free, equitable and conserving checks
//		• Files: line-oriented preference profiles and YAML scenarios
//
// ✨ Why choose fairdiv?
//
//   - Exact – every value is a *big.Rat; "fair" is an equality, not a guess
//   - Reproducible – seeded randomness, identical output for identical seeds
//   - Observable – structured zap logging per protocol round, off by default
//   - Composable – one Divider interface, a name registry, batch runs
//
// Under the hood, everything is organized under four subpackages:
//
//	cake/     — resources, preferences, FindPiece/CreatePieces
//	divide/   — the protocols, the Divider contract, settlements, DivideAll
//	validate/ — post-hoc fairness checks and reports
//	profile/  — preference files and YAML scenarios
//
// Quick example:
//
//	strip, _ := cake.NewContinuous(cake.R(0, 1), cake.R(1, 1))
//	d, _ := divide.New("last-diminisher", users, strip, divide.WithSeed(7))
//	div, _ := d.Divide()
//	fmt.Println(validate.Check(div).Proportional)
//
//	go get github.com/katalvlaran/fairdiv
package fairdiv

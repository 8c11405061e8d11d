// SPDX-License-Identifier: MIT

// Package divide implements classical fair-division protocols on top of the
// cake resources and preferences.
//
// What:
//
//   - DivideAndChoose / inverse        2 participants, envy-free, proportional
//   - LastDiminisher (Banach–Knaster)  n participants, proportional
//   - DubinsSpanier (moving knife)     n participants, proportional
//   - SealedBidAuction                 n participants, per-unit highest bid
//   - KnasterSealedBids                auction plus side payments (Settlement)
//   - AdjustedWinner                   2 participants, one shared unit (SharedItem)
//   - AlternatingChoice / Balanced…    turn-taking over units (Strategy)
//   - Inverse…AlternatingChoice        chore variants: take the least wanted unit
//   - SelfridgeConway                  3 participants, envy-free (span resources)
//   - LoneChooser                      n participants joining one at a time
//
// Contract:
//
//	Every protocol implements Divider. IsValid reports configuration errors
//	(participant count, duplicate IDs, preference/resource kind mismatch) and
//	must pass before Divide. Divide clones the resource, never mutates its
//	inputs, and returns a Division whose shares partition the whole, listed
//	in the caller's participant order. Errors from the piece finder during a
//	run are returned wrapped, never retried.
//
// Determinism:
//
//	Role assignment (cutter, join order, random turns) draws from an injected
//	*rand.Rand (WithSeed / WithRand). The same seed, participants and
//	resource always produce the same division.
//
// Observability:
//
//	WithLogger attaches a *zap.Logger; rounds are logged at debug level with
//	structured fields. The default logger discards everything.
//
// Concurrency:
//
//	A single divider is not safe for concurrent use. Distinct dividers are
//	independent; DivideAll runs them on an errgroup, and Repeat derives one
//	random stream per run.
package divide

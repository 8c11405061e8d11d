// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// errors.go — sentinel errors for divider configuration.
//
// Configuration errors come from IsValid and are meant to be checked before
// Divide. Errors raised while dividing (cake.ErrWeightUnattainable and
// friends) are wrapped with the round that failed and returned as-is; no
// protocol retries.

package divide

import "errors"

var (
	// ErrTooFewParticipants is returned when fewer than two preferences are given.
	ErrTooFewParticipants = errors.New("divide: at least two participants required")

	// ErrWrongParticipantCount is returned when a protocol needs an exact
	// number of participants and got another.
	ErrWrongParticipantCount = errors.New("divide: wrong participant count")

	// ErrDuplicateParticipant is returned when two preferences share an ID.
	ErrDuplicateParticipant = errors.New("divide: duplicate participant id")

	// ErrNilResource is returned when the divider has no resource.
	ErrNilResource = errors.New("divide: nil resource")

	// ErrUnequalValuation is returned when a protocol that compares values
	// across participants finds that they value the whole differently.
	ErrUnequalValuation = errors.New("divide: participants value the whole differently")

	// ErrUnsupportedKind is returned when a protocol cannot run on the
	// resource kind.
	ErrUnsupportedKind = errors.New("divide: resource kind not supported by protocol")

	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("divide: unknown algorithm")

	// ErrNegativeRuns is returned by Repeat when runs < 0.
	ErrNegativeRuns = errors.New("divide: run count must be >= 0")
)

// Package msep: option and error definitions for the m-separation
// oracle.
package msep

import (
	"fmt"

	"github.com/katalvlaran/lvlpag/core"
)

// Sentinel errors for separation queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("msep: graph is nil: %w", core.ErrInvalidQuery)

	// ErrOverlappingSets is returned when x, y, z are not pairwise
	// disjoint where required (x∩y, x∩z, y∩z must all be empty).
	ErrOverlappingSets = fmt.Errorf("msep: query sets overlap: %w", core.ErrInvalidQuery)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("msep: invalid option supplied: %w", core.ErrInvalidQuery)

	// ErrBudgetExceeded is returned when the legal-path strategy hits
	// the WithMaxPaths cap before reaching a verdict.
	ErrBudgetExceeded = fmt.Errorf("msep: path budget exceeded")
)

// Strategy selects the decision procedure behind MSeparated. Both
// strategies agree on every valid query; they trade graph size for
// search breadth.
type Strategy uint8

const (
	// StrategyMoralize decides the query by hop-state reachability that
	// applies the collider/non-collider rule per traversal step. This
	// generalizes classical ancestral moralization, which is only sound
	// when every mark is fully oriented, to circle-mark graphs.
	// Polynomial; the default.
	StrategyMoralize Strategy = iota

	// StrategyLegalPaths enumerates simple paths between x and y and
	// tests each with paths.IsMConnecting. Exponential in the worst
	// case; intended for small graphs and verification.
	StrategyLegalPaths
)

// String returns the lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyMoralize:
		return "moralize"
	case StrategyLegalPaths:
		return "legal-paths"
	default:
		return "unknown"
	}
}

// Option configures a separation query via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the query runs.
type Option func(*Options)

// Options holds the tunable parameters of a separation query.
type Options struct {
	// Strategy picks the decision procedure. Default StrategyMoralize.
	Strategy Strategy

	// MaxPaths, if > 0, caps how many candidate x-y paths the
	// legal-path strategy may test before giving up with
	// ErrBudgetExceeded. 0 disables the cap. Ignored by the
	// moralization strategy, which is polynomial anyway.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the moralization strategy and no
// path budget.
func DefaultOptions() Options {
	return Options{Strategy: StrategyMoralize, MaxPaths: 0, err: nil}
}

// WithStrategy selects the decision procedure.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyMoralize && s != StrategyLegalPaths {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)

			return
		}
		o.Strategy = s
	}
}

// WithMaxPaths caps legal-path enumeration.
//
//	n > 0:  test at most n candidate paths
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPaths = n
	}
}

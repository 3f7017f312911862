// Package knot defines the relaxation options and sentinel errors
// for the knot subpackage of github.com/katalvlaran/gridknot.
package knot

import (
	"errors"
)

// Sentinel errors for knot construction.
var (
	// ErrTooFewVertices indicates the supplied curve cannot form a closed loop.
	ErrTooFewVertices = errors.New("knot: curve needs at least 3 vertices")
	// ErrBadOption indicates an Options field holds a meaningless value.
	ErrBadOption = errors.New("knot: invalid option value")
)

// Options holds the force-law and integration constants of the relaxation
// engine. All values are fixed for the engine's lifetime.
//
// The force law attracts each vertex to its two topological neighbors with
// magnitude Attraction·r^(1+AttractionExp) — a stiff spring without a rest
// length — and repels it from every other vertex with magnitude
// Repulsion·r^−(2+RepulsionExp), an inverse-power decay so only nearby
// non-neighbors push back meaningfully.
type Options struct {
	// Attraction scales the neighbor spring (H).
	Attraction float64
	// AttractionExp shapes the spring growth (β): magnitude is H·r^(1+β).
	AttractionExp float64
	// Repulsion scales the all-pairs repulsion (K).
	Repulsion float64
	// RepulsionExp shapes the repulsion falloff (α): magnitude is K·r^−(2+α).
	RepulsionExp float64
	// Mass divides accumulated force into acceleration. Must be positive.
	Mass float64
	// Damping multiplies velocity each step. Must lie in [0, 1).
	Damping float64
	// MaxStep caps per-step displacement magnitude. Must be positive.
	MaxStep float64
	// Epsilon is the minimum distance below which pairwise force
	// contributions are skipped, avoiding division blow-up. Must be positive.
	Epsilon float64
}

// DefaultOptions returns an Options with default settings:
// Attraction=1, AttractionExp=1, Repulsion=0.5, RepulsionExp=4,
// Mass=1, Damping=0.9, MaxStep=0.01, Epsilon=1e-6.
func DefaultOptions() Options {
	return Options{
		Attraction:    1,
		AttractionExp: 1,
		Repulsion:     0.5,
		RepulsionExp:  4,
		Mass:          1,
		Damping:       0.9,
		MaxStep:       0.01,
		Epsilon:       1e-6,
	}
}

// validate reports the first meaningless option value, wrapped on ErrBadOption.
func (o Options) validate() error {
	switch {
	case o.Mass <= 0:
		return wrapOption("Mass", o.Mass)
	case o.Damping < 0 || o.Damping >= 1:
		return wrapOption("Damping", o.Damping)
	case o.MaxStep <= 0:
		return wrapOption("MaxStep", o.MaxStep)
	case o.Epsilon <= 0:
		return wrapOption("Epsilon", o.Epsilon)
	default:
		return nil
	}
}

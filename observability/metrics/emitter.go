package metrics

import (
	"github.com/civitas-social/governance/core/events"
)

// Listener is an events.Emitter that feeds Prometheus counters from the
// governance core's structured events, so every deployment gets resolver
// and execution metrics without the core importing Prometheus directly.
type Listener struct {
	next events.Emitter
}

// NewListener wraps next (which may be nil) with Prometheus instrumentation.
func NewListener(next events.Emitter) *Listener {
	return &Listener{next: next}
}

// resolvedEvent mirrors governance's unexported resolvedEvent shape via
// duck typing: any event exposing these accessors is counted as a
// resolution outcome.
type resolvedEvent interface {
	ResolutionStatus() string
}

// votingPowerEvent mirrors the decayed-electorate snapshot carried by a
// resolution event, read through the same duck-typed interface.
type votingPowerEvent interface {
	ResolutionVotingPower() uint64
}

// Emit implements events.Emitter.
func (l *Listener) Emit(evt events.Event) {
	if r, ok := evt.(resolvedEvent); ok {
		ResolutionsTotal.WithLabelValues(r.ResolutionStatus()).Inc()
	}
	if v, ok := evt.(votingPowerEvent); ok {
		LastVotingPower.Set(float64(v.ResolutionVotingPower()))
	}
	if l.next != nil {
		l.next.Emit(evt)
	}
}

// Package metrics exposes the governance core's Prometheus instrumentation:
// proposal throughput, ballot counts, and resolver outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProposalsTotal counts admitted proposals by payload kind.
	ProposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civitas",
		Subsystem: "governance",
		Name:      "proposals_total",
		Help:      "Number of proposals admitted, by payload kind.",
	}, []string{"kind"})

	// BallotsTotal counts recorded ballots by approval side.
	BallotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civitas",
		Subsystem: "governance",
		Name:      "ballots_total",
		Help:      "Number of ballots recorded, by side.",
	}, []string{"side"})

	// ResolutionsTotal counts resolver outcomes by terminal status.
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civitas",
		Subsystem: "governance",
		Name:      "resolutions_total",
		Help:      "Number of proposals resolved, by resulting status.",
	}, []string{"status"})

	// LastVotingPower is the decayed electorate size observed at the most
	// recent resolve that moved a proposal to a terminal status (§4.4 step 1).
	LastVotingPower = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "civitas",
		Subsystem: "governance",
		Name:      "last_voting_power",
		Help:      "Decayed electorate size computed at the most recent resolve that settled a proposal.",
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApprovalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_approvals_total",
		Help: "Completed pass approvals by kind.",
	}, []string{"kind"})

	DeclinesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_declines_total",
		Help: "Declined pass applications by kind.",
	}, []string{"kind"})

	CardConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buspass_card_conflicts_total",
		Help: "Approvals rejected because the card was already bound to a live pass.",
	})

	ReaderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_reader_failures_total",
		Help: "Card reads that ended in timeout or device error.",
	}, []string{"cause"})

	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_scans_total",
		Help: "Conductor scans by outcome.",
	}, []string{"outcome"})
)

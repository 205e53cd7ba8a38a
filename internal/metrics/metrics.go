package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement outcomes used as the "outcome" label.
const (
	OutcomeSettled        = "settled"
	OutcomeAlreadySettled = "already_settled"
	OutcomeNotFound       = "not_found"
	OutcomeNotSuccessful  = "not_successful"
	OutcomeInProgress     = "in_progress"
	OutcomeError          = "error"
)

var (
	settlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Settlement attempts by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	settlementDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "settlement_duration_seconds",
			Help:    "Duration of settlement runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Tickets materialized by settlement",
		},
	)

	skippedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_skipped_lines_total",
			Help: "Selection lines skipped for data-quality reasons",
		},
	)

	degradedSettlements = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_degraded_total",
			Help: "Settlements that fell back to a reconstructed selection",
		},
	)

	walletCredits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_credit_amount_total",
			Help: "Amount credited to wallets by party",
		},
		[]string{"party"},
	)
)

func ObserveSettlement(source, outcome string, d time.Duration) {
	settlements.WithLabelValues(source, outcome).Inc()
	settlementDuration.WithLabelValues(source).Observe(d.Seconds())
}

func TicketsIssued(n int) {
	if n > 0 {
		ticketsIssued.Add(float64(n))
	}
}

func SkippedLines(n int) {
	if n > 0 {
		skippedLines.Add(float64(n))
	}
}

func DegradedSettlement() {
	degradedSettlements.Inc()
}

func WalletCredited(party string, amount float64) {
	if amount > 0 {
		walletCredits.WithLabelValues(party).Add(amount)
	}
}

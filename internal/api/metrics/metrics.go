// Package metrics defines the custom Prometheus metrics of the campus portal
// API. HTTP request metrics come from echoprometheus; these cover domain
// activity. All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus"

// ── Record metrics ───────────────────────────────────────────────────────────

// RecordsCreatedTotal counts records added through the API.
// Label:
//   - kind: record kind (e.g. "complaint", "booking")
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

// RecordsUpdatedTotal counts successful patches.
var RecordsUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_updated_total",
		Help:      "Total number of records updated, by kind.",
	},
	[]string{"kind"},
)

// ActionsTotal counts record actions.
// Labels:
//   - action: "comment", "event_registration", "team_registration" or "vote"
//   - result: "ok" or "rejected"
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of record actions, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Auth metrics ─────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication requests.
// Labels:
//   - op: "login", "register", "logout" or "password"
//   - result: "ok" or "failed"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// Result returns the result label for err.
func Result(err error, okLabel, failLabel string) string {
	if err != nil {
		return failLabel
	}
	return okLabel
}

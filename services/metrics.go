package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_lead_submissions_total",
			Help: "Lead submission attempts by site, lead source and outcome",
		},
		[]string{"site", "lead_source", "outcome"},
	)

	LeadAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landing_lead_api_duration_seconds",
			Help:    "Duration of calls to the lead intake API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"site", "outcome"},
	)

	LeadSubmissionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "landing_lead_submissions_in_flight",
			Help: "Form instances currently in the Submitting state",
		},
	)
)

// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package metrics records Prometheus instrumentation for browser launches.
// Counters and histograms are registered with the default registry via
// promauto; embedding applications decide whether and where to expose them.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	launchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "browse_launch_duration_seconds",
			Help:    "Duration of launcher invocations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"launcher", "outcome"},
	)

	launchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browse_launch_total",
			Help: "Total number of launcher invocations",
		},
		[]string{"launcher", "outcome"},
	)

	openTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browse_open_total",
			Help: "Total number of open calls, by browser target and outcome",
		},
		[]string{"platform", "browser", "outcome"},
	)

	launchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browse_launch_errors_total",
			Help: "Total number of launcher errors by classification",
		},
		[]string{"launcher", "error_type"},
	)
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDryRun  = "dry_run"
)

// RecordLaunch records one launcher invocation.
func RecordLaunch(launcher, outcome string, duration time.Duration) {
	labels := prometheus.Labels{"launcher": launcher, "outcome": outcome}
	launchTotal.With(labels).Inc()
	launchDuration.With(labels).Observe(duration.Seconds())
}

// RecordLaunchError records a failed launcher invocation with a coarse
// error classification derived from the error text.
func RecordLaunchError(launcher string, err error) {
	if err == nil {
		return
	}
	launchErrors.With(prometheus.Labels{
		"launcher":   launcher,
		"error_type": errorType(err.Error()),
	}).Inc()
}

// RecordOpen records the overall outcome of an open call.
func RecordOpen(platform, browser, outcome string) {
	openTotal.With(prometheus.Labels{
		"platform": platform,
		"browser":  browser,
		"outcome":  outcome,
	}).Inc()
}

// errorType categorizes error messages for better metrics.
func errorType(msg string) string {
	switch {
	case containsAny(msg, "not found", "no such file", "no usable browser"):
		return "not_found"
	case containsAny(msg, "permission denied"):
		return "permission_denied"
	case containsAny(msg, "exit status", "return code"):
		return "nonzero_exit"
	case containsAny(msg, "signal"):
		return "signal"
	case containsAny(msg, "context canceled", "canceled", "deadline"):
		return "canceled"
	default:
		return "unknown"
	}
}

// containsAny checks if a string contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

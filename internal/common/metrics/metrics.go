// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TemplatesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_templates_parsed_total",
			Help: "Total number of application templates parsed",
		},
		[]string{"template_id"},
	)

	TemplateParseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_template_parse_failures_total",
			Help: "Total number of template parse failures",
		},
		[]string{"template_id"},
	)

	ContainerReplacements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_container_replacements_total",
			Help: "Total number of branch-driven container replacements",
		},
		[]string{"template_id"},
	)

	AutosaveTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_autosave_triggers_total",
			Help: "Total number of autosave events fired",
		},
	)

	AutofillCompletions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_autofill_completions_total",
			Help: "Total number of combined autofill emissions",
		},
	)

	ViewsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_views_loaded_total",
			Help: "Total number of renderer instances created",
		},
		[]string{"component_type"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_api_request_duration_seconds",
			Help: "Duration of backend API requests in seconds",
		},
		[]string{"operation"},
	)

	APIRequestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_api_request_failures_total",
			Help: "Total number of failed backend API requests",
		},
		[]string{"operation", "error_code"},
	)
)

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"

	"github.com/katariya/portfolio/internal/catalog"
)

// otherTag labels selections of tags that are not in the catalog, keeping
// label cardinality bounded by the catalog size.
const otherTag = "other"

type metrics struct {
	registry   *prometheus.Registry
	pageViews  *prometheus.CounterVec
	selections *prometheus.CounterVec
	known      map[string]bool
}

func newMetrics(projects []catalog.Project) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Rendered portfolio pages and fragments.",
		}, []string{"page"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_filter_selections_total",
			Help: "Project tag filter selections.",
		}, []string{"tag"}),
		known: lo.Associate(catalog.AvailableTags(projects), func(tag string) (string, bool) {
			return tag, true
		}),
	}
	m.registry.MustRegister(
		m.pageViews,
		m.selections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) recordSelection(tag string) {
	if !m.known[tag] {
		tag = otherTag
	}
	m.selections.WithLabelValues(tag).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

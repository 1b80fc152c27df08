// Package metrics exposes store activity as Prometheus collectors.
package metrics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors groups the store metrics. Register them on a dedicated registry
// so tests and multiple stores do not collide on the default one.
type Collectors struct {
	Registry *prometheus.Registry

	pointer     prometheus.Gauge
	paragraphs  *prometheus.GaugeVec
	saves       *prometheus.CounterVec
	writes      *prometheus.CounterVec
	reloads     prometheus.Counter
	pointerSets *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Collectors {
	c := &Collectors{
		Registry: prometheus.NewRegistry(),
		pointer: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bilingua_pointer",
			Help: "Current shared paragraph pointer",
		}),
		paragraphs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bilingua_paragraphs",
			Help: "Number of paragraphs loaded per book",
		}, []string{"side"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bilingua_saves_total",
			Help: "Save requests by outcome (changed, unchanged, error)",
		}, []string{"result"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bilingua_document_writes_total",
			Help: "Book rewrites triggered by saves",
		}, []string{"side"}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bilingua_reloads_total",
			Help: "Successful book reloads",
		}),
		pointerSets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bilingua_pointer_sets_total",
			Help: "Pointer updates by outcome (ok, error)",
		}, []string{"result"}),
	}
	c.Registry.MustRegister(c.pointer, c.paragraphs, c.saves, c.writes, c.reloads, c.pointerSets)
	return c
}

// Hooks returns store hooks that record metrics and log each event.
func (c *Collectors) Hooks(logger *slog.Logger) domain.Hooks {
	if logger == nil {
		logger = logging.NewNop()
	}
	return domain.Hooks{
		OnReload: func(ctx context.Context, e domain.ReloadEvent) {
			c.reloads.Inc()
			c.pointer.Set(float64(e.Pointer))
			c.paragraphs.WithLabelValues(string(domain.Left)).Set(float64(e.LeftCount))
			c.paragraphs.WithLabelValues(string(domain.Right)).Set(float64(e.RightCount))
			logger.Debug("books_reloaded", "pointer", e.Pointer, "left", e.LeftCount, "right", e.RightCount)
		},
		OnSave: func(ctx context.Context, e domain.SaveEvent) {
			switch {
			case e.Err != nil:
				c.saves.WithLabelValues("error").Inc()
			case e.Changed():
				c.saves.WithLabelValues("changed").Inc()
			default:
				c.saves.WithLabelValues("unchanged").Inc()
			}
			if e.LeftWritten {
				c.writes.WithLabelValues(string(domain.Left)).Inc()
			}
			if e.RightWritten {
				c.writes.WithLabelValues(string(domain.Right)).Inc()
			}
		},
		OnPointerSet: func(ctx context.Context, e domain.PointerEvent) {
			c.pointer.Set(float64(e.To))
			if e.Err != nil {
				c.pointerSets.WithLabelValues("error").Inc()
				return
			}
			c.pointerSets.WithLabelValues("ok").Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})
}

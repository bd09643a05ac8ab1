// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/holomush/gridcore/internal/board"
	"github.com/holomush/gridcore/internal/entity"
	"github.com/holomush/gridcore/internal/script"
)

// Pathfinding outcome labels.
const (
	PathFound       = "found"
	PathUnreachable = "unreachable"
)

// Metrics holds the simulation metrics. It records verb outcomes for the
// script executor and tracks board population as a board observer.
type Metrics struct {
	VerbTotal        *prometheus.CounterVec
	VerbDuration     *prometheus.HistogramVec
	PathfindDuration *prometheus.HistogramVec
	BoardEntities    prometheus.Gauge
	BoardMutations   *prometheus.CounterVec
}

var (
	_ script.Recorder = (*Metrics)(nil)
	_ board.Observer  = (*Metrics)(nil)
)

// NewMetrics creates the simulation metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		VerbTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridcore_verb_total",
				Help: "Total number of verbs executed by verb and result code",
			},
			[]string{"verb", "code"},
		),
		VerbDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridcore_verb_duration_seconds",
				Help:    "Verb execution duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"verb"},
		),
		PathfindDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridcore_pathfind_duration_seconds",
				Help:    "Path search duration in seconds by outcome",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"result"},
		),
		BoardEntities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcore_board_entities",
			Help: "Number of entities registered on the board",
		}),
		BoardMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridcore_board_mutations_total",
				Help: "Total number of board registry mutations by operation",
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.VerbTotal)
	reg.MustRegister(m.VerbDuration)
	reg.MustRegister(m.PathfindDuration)
	reg.MustRegister(m.BoardEntities)
	reg.MustRegister(m.BoardMutations)
	return m
}

// ObserveVerb implements script.Recorder.
func (m *Metrics) ObserveVerb(verb, code string, elapsed time.Duration) {
	m.VerbTotal.WithLabelValues(verb, code).Inc()
	m.VerbDuration.WithLabelValues(verb).Observe(elapsed.Seconds())
}

// ObservePathfind implements script.Recorder.
func (m *Metrics) ObservePathfind(found bool, elapsed time.Duration) {
	result := PathUnreachable
	if found {
		result = PathFound
	}
	m.PathfindDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// OnAdd implements board.Observer.
func (m *Metrics) OnAdd(entity.Entity, entity.Position) {
	m.BoardEntities.Inc()
	m.BoardMutations.WithLabelValues("add").Inc()
}

// OnRemove implements board.Observer.
func (m *Metrics) OnRemove(entity.Entity, entity.Position) {
	m.BoardEntities.Dec()
	m.BoardMutations.WithLabelValues("remove").Inc()
}

// OnMove implements board.Observer.
func (m *Metrics) OnMove(entity.Entity, entity.Position, entity.Position) {
	m.BoardMutations.WithLabelValues("move").Inc()
}

// Package stats counts games with Prometheus collectors. There is no HTTP
// endpoint; the registry is dumped in the node_exporter textfile format.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vancomm/lunchsweeper/internal/mines"
)

const namespace = "lunchsweeper"

type Recorder struct {
	registry *prometheus.Registry

	gamesStarted  *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
	cellsOpened   *prometheus.CounterVec
	cascadeSize   *prometheus.HistogramVec
	flags         *prometheus.CounterVec
}

// [*Recorder] implements [mines.Observer]
var _ mines.Observer = (*Recorder)(nil)

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_started_total",
				Help:      "Games dealt or reset, by difficulty",
			},
			[]string{"difficulty"},
		),
		gamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_finished_total",
				Help:      "Games that ended, by difficulty and outcome",
			},
			[]string{"difficulty", "status"},
		),
		cellsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cells_opened_total",
				Help:      "Cells uncovered by safe reveals",
			},
			[]string{"difficulty"},
		),
		cascadeSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reveal_opened_cells",
				Help:      "Cells opened per safe reveal",
				Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100, 200},
			},
			[]string{"difficulty"},
		),
		flags: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flags_toggled_total",
				Help:      "Flag toggles, by direction",
			},
			[]string{"action"},
		),
	}
	r.registry.MustRegister(
		r.gamesStarted, r.gamesFinished, r.cellsOpened, r.cascadeSize, r.flags,
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) GameStarted(d mines.Difficulty) {
	r.gamesStarted.WithLabelValues(d.String()).Inc()
}

func (r *Recorder) CellsOpened(d mines.Difficulty, n int) {
	r.cellsOpened.WithLabelValues(d.String()).Add(float64(n))
	r.cascadeSize.WithLabelValues(d.String()).Observe(float64(n))
}

func (r *Recorder) FlagToggled(_ mines.Difficulty, flagged bool) {
	action := "unflag"
	if flagged {
		action = "flag"
	}
	r.flags.WithLabelValues(action).Inc()
}

func (r *Recorder) GameEnded(d mines.Difficulty, s mines.Status) {
	r.gamesFinished.WithLabelValues(d.String(), s.String()).Inc()
}

// WriteTextfile atomically replaces path with the current metric values.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

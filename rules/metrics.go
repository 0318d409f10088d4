package rules

import (
	"github.com/battlesnakeio/termsnake/game"
	"github.com/prometheus/client_golang/prometheus"
)

// Instrument wraps a Stepper so every tick is measured.
func Instrument(s Stepper) Stepper { return &metrics{s} }

var (
	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "step_seconds",
			Help:      "Time spent running a single tick.",
		},
	)
	turnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "turns_total",
			Help:      "Ticks processed by the engine.",
		},
	)
	boardFullTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "board_full_total",
			Help:      "Ticks that found no empty cell for food.",
		},
	)
	score = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "score",
			Help:      "Current snake history length.",
		},
	)
)

func init() {
	prometheus.MustRegister(stepDuration, turnsTotal, boardFullTotal, score)
}

type metrics struct{ s Stepper }

func (m *metrics) Step(dir game.Direction) error {
	t := prometheus.NewTimer(stepDuration)
	defer t.ObserveDuration()

	err := m.s.Step(dir)
	turnsTotal.Inc()
	if IsBoardFull(err) {
		boardFullTotal.Inc()
	}
	score.Set(float64(m.s.Frame().Score()))
	return err
}

func (m *metrics) Frame() Frame { return m.s.Frame() }

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"scoreboard/internal/domain"
)

const namespace = "scoreboard"

const (
	resultOK    = "ok"
	resultError = "error"

	codeNone    = "none"
	codeUnknown = "unknown"
)

// Recorder пишет результаты операций табло в Prometheus.
type Recorder struct {
	operations *prometheus.CounterVec
	teams      prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Scoreboard operations by result and error code.",
		}, []string{"operation", "result", "code"}),
		teams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "teams",
			Help:      "Number of teams on the board.",
		}),
	}

	for _, c := range []prometheus.Collector{r.operations, r.teams} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) ObserveOperation(op string, err error) {
	if err == nil {
		r.operations.WithLabelValues(op, resultOK, codeNone).Inc()
		return
	}

	code, ok := domain.GetCode(err)
	if !ok {
		code = codeUnknown
	}

	r.operations.WithLabelValues(op, resultError, code.String()).Inc()
}

func (r *Recorder) SetTeamCount(n int) {
	r.teams.Set(float64(n))
}

package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"scoreboard/internal/domain"
	"scoreboard/internal/infrastructure/metrics"
	"scoreboard/pkg/errcodes"
)

func TestRecorder(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()

	recorder, err := metrics.NewRecorder(reg)
	rq.NoError(err)

	recorder.ObserveOperation("add", nil)
	recorder.ObserveOperation("add", nil)
	recorder.ObserveOperation("add", domain.NewError(errcodes.TeamNameAlreadyInUse, "dup"))
	recorder.ObserveOperation("remove", errors.New("boom"))
	recorder.SetTeamCount(4)

	count, err := testutil.GatherAndCount(reg, "scoreboard_operations_total")
	rq.NoError(err)
	rq.Equal(3, count)

	families, err := reg.Gather()
	rq.NoError(err)

	values := map[string]float64{}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			key := family.GetName()
			for _, label := range m.GetLabel() {
				key += "," + label.GetValue()
			}
			if m.GetCounter() != nil {
				values[key] = m.GetCounter().GetValue()
			}
			if m.GetGauge() != nil {
				values[key] = m.GetGauge().GetValue()
			}
		}
	}

	rq.InDelta(2, values["scoreboard_operations_total,none,add,ok"], 0)
	rq.InDelta(1, values["scoreboard_operations_total,TeamNameAlreadyInUse,add,error"], 0)
	rq.InDelta(1, values["scoreboard_operations_total,unknown,remove,error"], 0)
	rq.InDelta(4, values["scoreboard_teams"], 0)
}

func TestRecorderDoubleRegistration(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()

	_, err := metrics.NewRecorder(reg)
	rq.NoError(err)

	_, err = metrics.NewRecorder(reg)
	rq.Error(err)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoreSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tropa_score_saves_total",
		Help: "Number of score replace-all writes.",
	})

	AttendanceSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tropa_attendance_saves_total",
		Help: "Number of attendance bulk writes.",
	})

	WorkflowTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tropa_workflow_transitions_total",
		Help: "Workflow step transitions by workflow kind and step.",
	}, []string{"workflow", "step"})
)

package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	serviceSheets = "sheets"
	serviceOpenAI = "openai"
	serviceSlack  = "slack"
)

type Metrics struct {
	// Commands counts handled messages by intent.
	Commands *prometheus.CounterVec
	// Failures counts failed external calls by service.
	Failures *prometheus.CounterVec
}

// NewMetrics creates the bot collectors and registers them with reg. A nil
// registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gilbert",
			Name:      "commands_total",
			Help:      "Number of chat commands handled, by intent.",
		}, []string{"intent"}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gilbert",
			Name:      "external_failures_total",
			Help:      "Number of failed calls to external services.",
		}, []string{"service"}),
	}
}

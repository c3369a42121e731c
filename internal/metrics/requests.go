package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameAPIRequests = "api_requests_total"
	LabelEndpoint   = "endpoint"
	LabelStatus     = "status"
)

var APIRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAPIRequests,
		Help:      "Total requests sent to the Asana API",
		Namespace: Namespace,
	},
	[]string{LabelEndpoint, LabelStatus},
)

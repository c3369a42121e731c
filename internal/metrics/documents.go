package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameDocumentsLoaded  = "documents_loaded_total"
	NameDocumentsIndexed = "documents_indexed_total"
	LabelResult          = "result"

	ResultSuccess = "success"
	ResultSkipped = "skipped"
	ResultFailure = "failure"
)

var DocumentsLoaded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameDocumentsLoaded,
		Help:      "Total documents produced from Asana tasks",
		Namespace: Namespace,
	},
)

var DocumentsIndexed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameDocumentsIndexed,
		Help:      "Total documents sent to the corpus server",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "corpus_asana"

// WriteFile dumps the current value of every registered metric in the
// Prometheus text format, for the node exporter textfile collector.
func WriteFile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "could not write metrics to '%s'", filename)
	}

	return nil
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Corpus scan Prometheus metrics.
var (
	CorpusDocumentsScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "corpus_documents_scanned_total",
			Help:      "Total documents discovered during corpus scans",
		},
	)

	CorpusParseFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "corpus_parse_failures_total",
			Help:      "Total documents skipped because they could not be read or parsed",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers corpus scan metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(CorpusDocumentsScanned)
	prometheus.MustRegister(CorpusParseFailures)
	searchMetricsRegistered = true
}

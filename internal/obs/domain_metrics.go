package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// LinesComputedTotal counts resolved line items.
	LinesComputedTotal prometheus.Counter
	// DocumentsComputedTotal counts document-level aggregations.
	DocumentsComputedTotal prometheus.Counter
	// WordsRenderedTotal counts standalone amount-in-words renders.
	WordsRenderedTotal prometheus.Counter
	// NegativeNetTotal counts documents whose net amount went negative.
	NegativeNetTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises the billing counters.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		LinesComputedTotal = newCounter(reg, namespace, "lines_computed_total",
			"Number of line items resolved by the tax engine.")
		DocumentsComputedTotal = newCounter(reg, namespace, "documents_computed_total",
			"Number of document totals aggregations performed.")
		WordsRenderedTotal = newCounter(reg, namespace, "amount_words_rendered_total",
			"Number of standalone amount-in-words conversions.")
		NegativeNetTotal = newCounter(reg, namespace, "negative_net_amount_total",
			"Documents whose aggregated net amount was negative.")
	})
}

func newCounter(reg prometheus.Registerer, namespace, name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
	return registerOrExisting(reg, c).(prometheus.Counter)
}

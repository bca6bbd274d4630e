package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultValid       = "valid"
	ResultInvalid     = "invalid"
	ResultOK          = "ok"
	ResultInvalidBase = "invalid_base"
)

// Metrics counts document checks served by the API.
type Metrics struct {
	// Validations by document kind and outcome
	Validations *prometheus.CounterVec

	// Check digit calculations by outcome
	CheckDigits *prometheus.CounterVec
}

// New registers the document metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brdocs_validations_total",
			Help: "Total document validations by kind and result",
		}, []string{"kind", "result"}), // kind: "CPF", "CNPJ", "UNKNOWN"

		CheckDigits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brdocs_cnpj_check_digits_total",
			Help: "Total CNPJ check digit calculations by result",
		}, []string{"result"}),
	}
}

// IncrementValidation records one validation outcome.
func (m *Metrics) IncrementValidation(kind string, valid bool) {
	if m == nil {
		return
	}

	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.Validations.WithLabelValues(kind, result).Inc()
}

// IncrementCheckDigits records one check digit calculation outcome.
func (m *Metrics) IncrementCheckDigits(result string) {
	if m != nil {
		m.CheckDigits.WithLabelValues(result).Inc()
	}
}

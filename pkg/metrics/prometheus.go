package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

const unmatchedPath = "unmatched"

type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	regionSwitches *prometheus.CounterVec

	datasetReloads        *prometheus.CounterVec
	datasetReloadDuration prometheus.Histogram
	datasetLastReload     prometheus.Gauge

	unclassifiedRecords *prometheus.CounterVec

	renewalBucketCount *prometheus.GaugeVec
	renewalBucketValue *prometheus.GaugeVec
	renewalAtRiskValue *prometheus.GaugeVec
}

// NewManager cria as métricas num registry próprio, sem as métricas padrão do Go
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "crm",
		subsystem:        "tracker",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status",
		},
		[]string{"path", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   m.histogramBuckets,
		},
		[]string{"path", "method"},
	)

	m.regionSwitches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "region_switches_total",
			Help:      "Trocas da região selecionada",
		},
		[]string{"from", "to"},
	)

	m.datasetReloads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_reloads_total",
			Help:      "Recargas do dataset por resultado",
		},
		[]string{"result"},
	)

	m.datasetReloadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_reload_duration_seconds",
		Help:      "Duração das recargas do dataset",
		Buckets:   m.histogramBuckets,
	})

	m.datasetLastReload = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_last_success_unix",
		Help:      "Horário da última recarga bem-sucedida",
	})

	m.unclassifiedRecords = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "unclassified_records_total",
			Help:      "Registros fora das categorias declaradas de uma visualização",
		},
		[]string{"view", "region"},
	)

	m.renewalBucketCount = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "renewal_bucket_count",
			Help:      "Renovações por faixa de urgência no último resumo",
		},
		[]string{"region", "bucket"},
	)

	m.renewalBucketValue = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "renewal_bucket_value_nok",
			Help:      "Valor de renovação por faixa de urgência no último resumo",
		},
		[]string{"region", "bucket"},
	)

	m.renewalAtRiskValue = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "renewal_at_risk_value_nok",
			Help:      "Valor atual em risco no último resumo",
		},
		[]string{"region"},
	)
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// Registry retorna o registry usado pelo endpoint /metrics
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest registra uma requisição; 404 agrupa os caminhos para conter a cardinalidade
func (m *Manager) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if !m.active() {
		return
	}
	if status == http.StatusNotFound {
		path = unmatchedPath
	}

	m.httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

func (m *Manager) RecordRegionSwitch(from, to domain.Region) {
	if !m.active() {
		return
	}
	m.regionSwitches.WithLabelValues(string(from), string(to)).Inc()
}

// RecordDatasetReload tem a assinatura de dataset.ReloadObserver
func (m *Manager) RecordDatasetReload(source string, duration time.Duration, err error) {
	if !m.active() {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	} else {
		m.datasetLastReload.SetToCurrentTime()
	}

	m.datasetReloads.WithLabelValues(result).Inc()
	m.datasetReloadDuration.Observe(duration.Seconds())
}

func (m *Manager) RecordUnclassified(view string, region domain.Region, count int) {
	if !m.active() || count <= 0 {
		return
	}
	m.unclassifiedRecords.WithLabelValues(view, string(region)).Add(float64(count))
}

// SetRenewalDigest zera todas as faixas da região antes de aplicar o resumo,
// já que faixas vazias não aparecem nele
func (m *Manager) SetRenewalDigest(digest *domain.RenewalDigest) {
	if !m.active() || digest == nil {
		return
	}

	region := string(digest.Region)
	for _, urgency := range domain.UrgencyOrder() {
		m.renewalBucketCount.WithLabelValues(region, string(urgency)).Set(0)
		m.renewalBucketValue.WithLabelValues(region, string(urgency)).Set(0)
	}

	for _, entry := range digest.Entries {
		m.renewalBucketCount.WithLabelValues(region, string(entry.Urgency)).Set(float64(entry.Count))
		m.renewalBucketValue.WithLabelValues(region, string(entry.Urgency)).Set(entry.Value)
	}
	m.renewalAtRiskValue.WithLabelValues(region).Set(digest.AtRiskValue)
}

package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/urlutil"
)

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	// Метрики
	recordsTotal *prometheus.CounterVec
	alertsTotal  *prometheus.CounterVec

	// Instance label (hostname)
	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - structlog_records_total (counter: team, module, level)
//   - structlog_alerts_total (counter: team, module, status)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	recordsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "structlog",
			Name:      "records_total",
			Help:      "Total number of emitted structured log records",
		},
		[]string{"team", "module", "level"},
	)

	alertsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "structlog",
			Name:      "alerts_total",
			Help:      "Total number of alert dispatch attempts by outcome",
		},
		[]string{"team", "module", "status"},
	)

	// Регистрируем все метрики атомарно.
	// Используем Register вместо MustRegister для избежания panic.
	collectors := []prometheus.Collector{recordsTotal, alertsTotal}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:       config,
		logger:       logger,
		registry:     registry,
		recordsTotal: recordsTotal,
		alertsTotal:  alertsTotal,
		instance:     instance,
	}, nil
}

// maxLabelLength — максимальная длина значения label для защиты от cardinality explosion.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до допустимой длины и удаляет
// контрольные символы (\n, \r, \0), которые могут нарушить Prometheus text format.
// Обрезка выполняется по рунам (не по байтам) для корректной работы с UTF-8.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 { // контрольные символы: \n, \r, \t, \0 и др.
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordLog инкрементирует счётчик эмитированных записей.
func (c *PrometheusCollector) RecordLog(team, module, level string) {
	c.recordsTotal.WithLabelValues(sanitizeLabel(team), sanitizeLabel(module), sanitizeLabel(level)).Inc()
}

// RecordAlert инкрементирует счётчик публикаций алертов по результату.
func (c *PrometheusCollector) RecordAlert(team, module string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.alertsTotal.WithLabelValues(sanitizeLabel(team), sanitizeLabel(module), status).Inc()
}

// Push отправляет метрики в Pushgateway.
// Возвращает nil даже при ошибке — ошибки логируются, сбой доставки
// метрик не должен влиять на логирование.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"error", err.Error(),
		)
		return nil
	}

	c.logger.Debug("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
	)
	return nil
}

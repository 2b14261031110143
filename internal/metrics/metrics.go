// Package metrics holds the prometheus collectors shared by the services and handlers.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "primedice"

// Tool call statuses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics groups the collectors registered on one registry
type Metrics struct {
	registry *prometheus.Registry

	rollsTotal       *prometheus.CounterVec
	primeChecksTotal *prometheus.CounterVec
	toolCallsTotal   *prometheus.CounterVec
	agentRunsTotal   *prometheus.CounterVec
}

// New creates collectors on a fresh registry, including the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rollsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rolls_total",
				Help:      "Total number of die rolls by face",
			},
			[]string{"face"},
		),
		primeChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prime_checks_total",
				Help:      "Total number of primality checks by result",
			},
			[]string{"result"},
		),
		toolCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of tool dispatches",
			},
			[]string{"tool", "status"},
		),
		agentRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "agent_runs_total",
				Help:      "Total number of agent runs",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rollsTotal,
		m.primeChecksTotal,
		m.toolCallsTotal,
		m.agentRunsTotal,
	)

	return m
}

// RecordRoll counts a roll of the given face
func (m *Metrics) RecordRoll(face int) {
	if m == nil {
		return
	}
	m.rollsTotal.WithLabelValues(strconv.Itoa(face)).Inc()
}

// RecordPrimeCheck counts a primality decision
func (m *Metrics) RecordPrimeCheck(isPrime bool) {
	if m == nil {
		return
	}
	result := "composite"
	if isPrime {
		result = "prime"
	}
	m.primeChecksTotal.WithLabelValues(result).Inc()
}

// RecordToolCall counts a tool dispatch
func (m *Metrics) RecordToolCall(tool string, err error) {
	if m == nil {
		return
	}
	m.toolCallsTotal.WithLabelValues(tool, status(err)).Inc()
}

// RecordAgentRun counts a finished agent run
func (m *Metrics) RecordAgentRun(err error) {
	if m == nil {
		return
	}
	m.agentRunsTotal.WithLabelValues(status(err)).Inc()
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

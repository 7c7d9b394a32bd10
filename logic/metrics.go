package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks inkwell/logic IMetrics

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	ActivityReceived(kind string)
	ActivitySent(kind string)
	DeliveryFailed(tier string)
	ServiceStarted()
	TotalFollowers(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                *shared.Config
	apiRequestsIn      *prometheus.HistogramVec
	apubRequestsIn     *prometheus.HistogramVec
	apubRequestsOut    *prometheus.HistogramVec
	activitiesReceived *prometheus.CounterVec
	activitiesSent     *prometheus.CounterVec
	deliveriesFailed   *prometheus.CounterVec
	serviceStarted     prometheus.Counter
	totalFollowers     prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of federation requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of federation requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.activitiesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_received",
		Help: "Number of inbound activities handled, by kind",
	}, []string{"kind"})
	prometheus.Register(res.activitiesReceived)

	res.activitiesSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_sent",
		Help: "Number of outbound activities built and dispatched, by kind",
	}, []string{"kind"})
	prometheus.Register(res.activitiesSent)

	res.deliveriesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveries_failed",
		Help: "Number of failed inbox deliveries, by tier",
	}, []string{"tier"})
	prometheus.Register(res.deliveriesFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local actors",
	})
	prometheus.Register(res.totalFollowers)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) ActivityReceived(kind string) {
	m.activitiesReceived.WithLabelValues(kind).Add(1)
}

func (m *metrics) ActivitySent(kind string) {
	m.activitiesSent.WithLabelValues(kind).Add(1)
}

func (m *metrics) DeliveryFailed(tier string) {
	m.deliveriesFailed.WithLabelValues(tier).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

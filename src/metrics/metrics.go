package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SosSignalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sos_signals_created_total",
		Help: "SOS signals raised by users.",
	})

	ContactRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_requests_total",
		Help: "Contact request attempts by result.",
	}, []string{"result"})

	LocationUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "location_updates_total",
		Help: "Location upserts.",
	})

	OutboxEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Outbox events delivered to the broker by event type.",
	}, []string{"event_type"})

	HttpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
)

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

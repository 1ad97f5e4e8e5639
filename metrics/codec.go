// Package metrics has prometheus metric variables/functions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricCodecDecode = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailcodec_decode_total",
			Help: "Decode operations and their results.",
		},
		[]string{
			"op",     // percent, charset
			"result", // ok, malformed, error
		},
	)
	metricCodecEscape = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailcodec_escape_total",
			Help: "Escape and quote operations.",
		},
		[]string{
			"op", // escape, surround, quote
		},
	)
)

func CodecDecodeInc(op, result string) {
	metricCodecDecode.WithLabelValues(op, result).Inc()
}

func CodecEscapeInc(op string) {
	metricCodecEscape.WithLabelValues(op).Inc()
}

package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_allocations_total",
		Help: "The total number of buffers handed out, by kind (allocate, zero_allocate, reallocate)",
	}, []string{"list", "kind"})

	allocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_allocation_failures_total",
		Help: "The total number of refused allocation requests",
	}, []string{"list", "kind"})

	releases = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_releases_total",
		Help: "The total number of buffers released",
	}, []string{"list"})

	liveElements = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_live_elements",
		Help: "The number of element slots currently allocated",
	}, []string{"list"})

	clears = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_clears_total",
		Help: "The total number of times a list was cleared",
	}, []string{"list"})

	frees = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_frees_total",
		Help: "The total number of times a list was destroyed",
	}, []string{"list"})
)

const (
	kindAllocate     = "allocate"
	kindZeroAllocate = "zero_allocate"
	kindReallocate   = "reallocate"
)

func sanitizeName(name string) string {
	if name == "" {
		return "unnamed"
	}

	return name
}

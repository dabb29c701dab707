package engine

import (
	"sync/atomic"
	"time"

	"github.com/quirelabs/quire/internal/engine/split"
)

// Metrics tracks pagination activity for one engine.
// All counters are atomic; recording never blocks engine operations.
type Metrics struct {
	paginations  atomic.Uint64
	incrementals atomic.Uint64
	updates      atomic.Uint64
	pagesBuilt   atomic.Uint64

	// Split kinds chosen by the selector
	splitParagraph atomic.Uint64
	splitSentence  atomic.Uint64
	splitWord      atomic.Uint64
	splitForced    atomic.Uint64

	startTime time.Time
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Paginations    uint64
	Incrementals   uint64
	Updates        uint64
	PagesBuilt     uint64
	SplitParagraph uint64
	SplitSentence  uint64
	SplitWord      uint64
	SplitForced    uint64
	Uptime         time.Duration
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordPagination records a full pagination producing n pages.
func (m *Metrics) RecordPagination(n int) {
	m.paginations.Add(1)
	m.pagesBuilt.Add(uint64(n))
}

// RecordIncremental records an incremental repagination; n is the total
// page count afterwards.
func (m *Metrics) RecordIncremental(n int) {
	m.incrementals.Add(1)
	m.pagesBuilt.Add(uint64(n))
}

// RecordUpdate records a single-page content replacement.
func (m *Metrics) RecordUpdate() {
	m.updates.Add(1)
}

// RecordSplit records the kind of a chosen split point.
func (m *Metrics) RecordSplit(k split.Kind) {
	switch k {
	case split.KindParagraph:
		m.splitParagraph.Add(1)
	case split.KindSentence:
		m.splitSentence.Add(1)
	case split.KindWord:
		m.splitWord.Add(1)
	case split.KindForced:
		m.splitForced.Add(1)
	}
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Paginations:    m.paginations.Load(),
		Incrementals:   m.incrementals.Load(),
		Updates:        m.updates.Load(),
		PagesBuilt:     m.pagesBuilt.Load(),
		SplitParagraph: m.splitParagraph.Load(),
		SplitSentence:  m.splitSentence.Load(),
		SplitWord:      m.splitWord.Load(),
		SplitForced:    m.splitForced.Load(),
		Uptime:         time.Since(m.startTime),
	}
}

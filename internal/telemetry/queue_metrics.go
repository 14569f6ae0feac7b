package telemetry

import "sync/atomic"

// QueueMetrics fasst Zähler für Queue-Operationen zusammen.
//
// Die Zähler sind atomar, damit mehrere Queues in unterschiedlichen
// Goroutinen eine Instanz teilen können. Ein nil-Empfänger ignoriert alle
// Aufrufe.
type QueueMetrics struct {
	pushes          atomic.Uint64
	pops            atomic.Uint64
	emptyPolls      atomic.Uint64
	appends         atomic.Uint64
	splicedNodes    atomic.Uint64
	rejectedAppends atomic.Uint64
}

// Snapshot ist eine Momentaufnahme der Zähler.
type Snapshot struct {
	Pushes          uint64
	Pops            uint64
	EmptyPolls      uint64
	Appends         uint64
	SplicedNodes    uint64
	RejectedAppends uint64
}

var defaultQueueMetrics QueueMetrics

// DefaultQueueMetrics liefert die globalen Metriken.
func DefaultQueueMetrics() *QueueMetrics {
	return &defaultQueueMetrics
}

// RecordPush zählt ein eingefügtes Element.
func (m *QueueMetrics) RecordPush() {
	if m == nil {
		return
	}
	m.pushes.Add(1)
}

// RecordPop zählt eine Entnahme. hit ist false, wenn die Queue leer war.
func (m *QueueMetrics) RecordPop(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.pops.Add(1)
		return
	}
	m.emptyPolls.Add(1)
}

// RecordAppend meldet einen Splice-Versuch mit der Anzahl verschobener Knoten.
func (m *QueueMetrics) RecordAppend(moved int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.rejectedAppends.Add(1)
		return
	}
	m.appends.Add(1)
	m.splicedNodes.Add(uint64(moved))
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *QueueMetrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		Pushes:          m.pushes.Load(),
		Pops:            m.pops.Load(),
		EmptyPolls:      m.emptyPolls.Load(),
		Appends:         m.appends.Load(),
		SplicedNodes:    m.splicedNodes.Load(),
		RejectedAppends: m.rejectedAppends.Load(),
	}
}

// Reset setzt alle Zähler zurück.
func (m *QueueMetrics) Reset() {
	if m == nil {
		return
	}
	m.pushes.Store(0)
	m.pops.Store(0)
	m.emptyPolls.Store(0)
	m.appends.Store(0)
	m.splicedNodes.Store(0)
	m.rejectedAppends.Store(0)
}

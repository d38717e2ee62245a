// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import (
	"sync"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// History is a bounded, time-windowed collection of performance records keyed
// by id for upsert semantics. It is process-lifetime state: a cache of
// observed performance rebuildable by replaying the content store, with no
// persistence guarantee across restarts.
//
// All methods are safe for concurrent use.
type History struct {
	mu            sync.RWMutex
	records       []models.PerformanceRecord
	index         map[string]int // id -> position in records
	gen           uint64         // bumped on every mutation
	retentionDays int
	cap           int
	now           func() time.Time
}

// NewHistory creates a history with the given retention horizon in days and
// a hard cap on record count. Values below 1 fall back to the defaults
// (180 days, 1000 records).
func NewHistory(retentionDays, capRecords int) *History {
	if retentionDays < 1 {
		retentionDays = 180
	}
	if capRecords < 1 {
		capRecords = 1000
	}
	return &History{
		index:         make(map[string]int),
		retentionDays: retentionDays,
		cap:           capRecords,
		now:           time.Now,
	}
}

// UpsertMany inserts or replaces records by id. A record whose id already
// exists replaces the stored record in place (history length unchanged); new
// ids append. Pruning and the record cap are applied after every call.
func (h *History) UpsertMany(records []models.PerformanceRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range records {
		if pos, ok := h.index[records[i].ID]; ok {
			h.records[pos] = records[i]
		} else {
			h.index[records[i].ID] = len(h.records)
			h.records = append(h.records, records[i])
		}
	}

	h.pruneLocked(h.now())
	h.enforceCapLocked()
	h.gen++
}

// Generation returns a counter that changes on every UpsertMany call, even
// when an in-place replacement leaves the record count unchanged. Consumers
// caching derived views compare generations to detect staleness.
func (h *History) Generation() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.gen
}

// pruneLocked drops records whose creation time is older than the retention
// horizon. A zero creation time is treated as "now" so a parsing bug never
// silently discards data.
func (h *History) pruneLocked(now time.Time) {
	cutoff := now.AddDate(0, 0, -h.retentionDays)

	kept := h.records[:0]
	for i := range h.records {
		created := h.records[i].CreatedTime
		if created.IsZero() {
			created = now
		}
		if created.After(cutoff) {
			kept = append(kept, h.records[i])
		}
	}
	h.records = kept
	h.rebuildIndexLocked()
}

// enforceCapLocked keeps only the most recently inserted records.
func (h *History) enforceCapLocked() {
	if len(h.records) <= h.cap {
		return
	}
	h.records = h.records[len(h.records)-h.cap:]
	h.rebuildIndexLocked()
}

func (h *History) rebuildIndexLocked() {
	h.index = make(map[string]int, len(h.records))
	for i := range h.records {
		h.index[h.records[i].ID] = i
	}
}

// Len returns the current record count.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Recent returns up to limit records, most recently inserted first.
func (h *History) Recent(limit int) []models.PerformanceRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if limit <= 0 || limit > len(h.records) {
		limit = len(h.records)
	}

	out := make([]models.PerformanceRecord, 0, limit)
	for i := len(h.records) - 1; i >= len(h.records)-limit; i-- {
		out = append(out, h.records[i])
	}
	return out
}

// Snapshot returns a copy of all records in insertion order.
func (h *History) Snapshot() []models.PerformanceRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.PerformanceRecord, len(h.records))
	copy(out, h.records)
	return out
}

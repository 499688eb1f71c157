// Package query tracks repeated statements to flag N+1 access patterns,
// such as a FindUnique issued once per parent row instead of an Include.
package query

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultThreshold = 10
	DefaultWindow    = time.Second
	// DefaultMaxPatterns bounds the number of statements tracked at once.
	DefaultMaxPatterns = 1000
)

// RepeatDetector counts identical statement texts inside a sliding window.
// Statements are compared after placeholder rendering, so calls differing
// only in arguments share one pattern.
type RepeatDetector struct {
	mu        sync.Mutex
	patterns  map[string]*pattern
	threshold int
	window    time.Duration
	maxSize   int
}

type pattern struct {
	count     int
	firstSeen time.Time
	alerted   bool
}

// Alert describes a statement that crossed the threshold.
type Alert struct {
	Statement string
	Count     int
	Within    time.Duration
}

func (a Alert) String() string {
	return fmt.Sprintf("possible N+1: %q ran %d times within %v", a.Statement, a.Count, a.Within.Round(time.Millisecond))
}

// NewRepeatDetector returns a detector alerting once a statement runs
// threshold times within window.
func NewRepeatDetector(threshold int, window time.Duration) *RepeatDetector {
	return &RepeatDetector{
		patterns:  make(map[string]*pattern),
		threshold: threshold,
		window:    window,
		maxSize:   DefaultMaxPatterns,
	}
}

func DefaultRepeatDetector() *RepeatDetector {
	return NewRepeatDetector(DefaultThreshold, DefaultWindow)
}

// Record counts one execution of stmt at now. It returns an alert the first
// time the statement reaches the threshold inside its window.
func (d *RepeatDetector) Record(stmt string, now time.Time) (Alert, bool) {
	if d == nil {
		return Alert{}, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.patterns[stmt]
	if ok && now.Sub(p.firstSeen) > d.window {
		ok = false
	}
	if !ok {
		if _, exists := d.patterns[stmt]; !exists && len(d.patterns) >= d.maxSize {
			d.evictOldest()
		}
		p = &pattern{firstSeen: now}
		d.patterns[stmt] = p
	}

	p.count++
	if p.count < d.threshold || p.alerted {
		return Alert{}, false
	}
	p.alerted = true
	return Alert{Statement: shorten(stmt), Count: p.count, Within: now.Sub(p.firstSeen)}, true
}

// Reset forgets every tracked statement.
func (d *RepeatDetector) Reset() {
	d.mu.Lock()
	d.patterns = make(map[string]*pattern)
	d.mu.Unlock()
}

func (d *RepeatDetector) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, p := range d.patterns {
		if oldestKey == "" || p.firstSeen.Before(oldest) {
			oldestKey, oldest = key, p.firstSeen
		}
	}
	delete(d.patterns, oldestKey)
}

func shorten(stmt string) string {
	if len(stmt) > 80 {
		return stmt[:80] + "..."
	}
	return stmt
}

package query

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatDetectorAlertsOnce(t *testing.T) {
	d := NewRepeatDetector(3, time.Second)
	now := time.Now()
	stmt := `SELECT "id" FROM "users" WHERE "id" = $1`

	_, alert := d.Record(stmt, now)
	assert.False(t, alert)
	_, alert = d.Record(stmt, now.Add(10*time.Millisecond))
	assert.False(t, alert)

	a, alert := d.Record(stmt, now.Add(20*time.Millisecond))
	assert.True(t, alert)
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, 20*time.Millisecond, a.Within)
	assert.Contains(t, a.String(), "possible N+1")

	_, alert = d.Record(stmt, now.Add(30*time.Millisecond))
	assert.False(t, alert, "a pattern alerts once per window")
}

func TestRepeatDetectorWindowExpires(t *testing.T) {
	d := NewRepeatDetector(2, 100*time.Millisecond)
	now := time.Now()

	d.Record("SELECT 1", now)
	_, alert := d.Record("SELECT 1", now.Add(time.Second))
	assert.False(t, alert)

	_, alert = d.Record("SELECT 1", now.Add(time.Second+time.Millisecond))
	assert.True(t, alert)
}

func TestRepeatDetectorDistinctStatements(t *testing.T) {
	d := NewRepeatDetector(2, time.Second)
	now := time.Now()

	d.Record("SELECT a", now)
	_, alert := d.Record("SELECT b", now)
	assert.False(t, alert)
}

func TestRepeatDetectorEvictsOldest(t *testing.T) {
	d := NewRepeatDetector(2, time.Minute)
	d.maxSize = 2
	now := time.Now()

	d.Record("first", now)
	d.Record("second", now.Add(time.Millisecond))
	d.Record("third", now.Add(2*time.Millisecond))
	assert.Len(t, d.patterns, 2)
	assert.NotContains(t, d.patterns, "first")

	d.Reset()
	assert.Empty(t, d.patterns)
}

func TestRepeatDetectorShortensStatement(t *testing.T) {
	d := NewRepeatDetector(1, time.Second)
	a, alert := d.Record(strings.Repeat("x", 200), time.Now())
	assert.True(t, alert)
	assert.Len(t, a.Statement, 83)
}

func TestNilRepeatDetector(t *testing.T) {
	var d *RepeatDetector
	_, alert := d.Record("SELECT 1", time.Now())
	assert.False(t, alert)
}

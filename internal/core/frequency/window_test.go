package frequency

import (
	"testing"
	"time"
)

func TestWindowAllowCapsPerKey(t *testing.T) {
	w := New(2, time.Minute)
	now := time.Now()

	if !w.Allow("k", now) || !w.Allow("k", now) {
		t.Fatal("first two events should fit under the cap")
	}
	if w.Allow("k", now) {
		t.Fatal("third event within the span should be rejected")
	}
	// Other keys are unaffected.
	if !w.Allow("other", now) {
		t.Fatal("independent key should not share the cap")
	}
}

func TestWindowSlides(t *testing.T) {
	w := New(1, time.Minute)
	now := time.Now()

	if !w.Allow("k", now) {
		t.Fatal("first event should be allowed")
	}
	if w.Allow("k", now.Add(30*time.Second)) {
		t.Fatal("event inside the span should be rejected")
	}
	if !w.Allow("k", now.Add(61*time.Second)) {
		t.Fatal("event after the span should be allowed again")
	}
}

func TestWindowAtCapDoesNotRecord(t *testing.T) {
	w := New(1, time.Minute)
	now := time.Now()

	if w.AtCap("k", now) {
		t.Fatal("empty key should not be at cap")
	}
	// AtCap must be a pure read: the key stays free afterwards.
	if !w.Allow("k", now) {
		t.Fatal("Allow after AtCap check should succeed")
	}
	if !w.AtCap("k", now) {
		t.Fatal("key should be at cap after one recorded event")
	}
}

func TestWindowRecordIsUnconditional(t *testing.T) {
	w := New(1, time.Minute)
	now := time.Now()

	w.Record("k", now)
	w.Record("k", now) // over the cap, still recorded
	if !w.AtCap("k", now) {
		t.Fatal("recorded key should be at cap")
	}
	if w.Allow("k", now) {
		t.Fatal("Allow should reject a key pushed over the cap by Record")
	}
}

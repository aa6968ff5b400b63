package logsink

import (
	"testing"
)

func TestCollectorAppendOrder(t *testing.T) {
	c := NewCollector(false)

	c.Log("pipeline", "first")
	c.Log("classifier", "other tag")
	c.Logf("pipeline", "second %d", 2)

	got := c.Get("pipeline")
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0] != "first" || got[1] != "second 2" {
		t.Errorf("messages out of order: %v", got)
	}

	if len(c.Get("classifier")) != 1 {
		t.Errorf("classifier tag lost its message")
	}
}

func TestCollectorGetUnknownTag(t *testing.T) {
	c := NewCollector(false)
	if got := c.Get("nothing"); len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
}

func TestCollectorGetReturnsCopy(t *testing.T) {
	c := NewCollector(false)
	c.Log("tag", "original")

	got := c.Get("tag")
	got[0] = "mutated"

	if c.Get("tag")[0] != "original" {
		t.Errorf("Get must return a copy")
	}
}

func TestNopDiscards(t *testing.T) {
	var s Sink = Nop{}
	s.Log("tag", "message")
	s.Logf("tag", "format %d", 1)
}

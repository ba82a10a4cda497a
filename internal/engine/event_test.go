package engine

import "testing"

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0

	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })
	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e Event

	e.AddListener(nil)

	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after adding nil, got %d", e.GetListenerCount())
	}

	e.Invoke() // Should not panic
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event
	calls := 0

	e.AddListener(func() { calls++ })
	e.RemoveAllListeners()
	e.Invoke()

	if calls != 0 {
		t.Errorf("Expected 0 calls after RemoveAllListeners, got %d", calls)
	}
}

func TestEventWithArgPassesValue(t *testing.T) {
	var e EventWithArg[string]
	var got string

	e.AddListener(func(s string) { got = s })
	e.Invoke("lava")

	if got != "lava" {
		t.Errorf("Expected listener to receive 'lava', got '%s'", got)
	}
}

func TestEventWithArgMultipleListeners(t *testing.T) {
	var e EventWithArg[int]
	sum := 0

	e.AddListener(func(n int) { sum += n })
	e.AddListener(func(n int) { sum += n * 10 })
	e.Invoke(3)

	if sum != 33 {
		t.Errorf("Expected sum 33, got %d", sum)
	}
}

package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeGo_RunsFunction(t *testing.T) {
	before := GetGoroutineCount()
	done := make(chan struct{})

	SafeGo(createTestLogger(), "test-worker", func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}

	assert.Greater(t, GetGoroutineCount(), before)
}

func TestSafeGo_RecoversFromPanic(t *testing.T) {
	done := make(chan struct{})

	SafeGo(createTestLogger(), "test-panic", func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}

	// Give the recovery deferral a moment to finish. If the panic were not
	// recovered the whole test process would have crashed.
	time.Sleep(10 * time.Millisecond)
}

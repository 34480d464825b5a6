package loadtrack

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerPendingUntilMarked(t *testing.T) {
	tracker := NewTracker()

	assert.False(t, tracker.IsLoaded("car-1"))

	tracker.MarkLoaded("car-1")
	assert.True(t, tracker.IsLoaded("car-1"))
	assert.False(t, tracker.IsLoaded("car-2"))
}

func TestTrackerMarkLoadedIsIdempotent(t *testing.T) {
	tracker := NewTracker()

	tracker.MarkLoaded("car-1")
	tracker.MarkLoaded("car-1")

	assert.True(t, tracker.IsLoaded("car-1"))
}

func TestTrackerResetDiscardsState(t *testing.T) {
	tracker := NewTracker()

	tracker.MarkLoaded("car-1")
	tracker.Reset()

	assert.False(t, tracker.IsLoaded("car-1"), "ids from a replaced collection are meaningless")
}

func TestTrackerInterleavedCompletions(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tracker.MarkLoaded(fmt.Sprintf("car-%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		assert.True(t, tracker.IsLoaded(fmt.Sprintf("car-%d", i)))
	}
}

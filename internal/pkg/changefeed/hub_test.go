package changefeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe(TableVacationRequests)
	defer cleanup()

	hub.Publish(TableVacationRequests, "insert")

	select {
	case ev := <-ch:
		assert.Equal(t, TableVacationRequests, ev.Table)
		assert.Equal(t, "insert", ev.Op)
	default:
		t.Fatal("expected buffered event")
	}
}

func TestHub_MultiTableSubscription(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe(TableVacationRequests, TableAttendanceLogs)
	defer cleanup()

	hub.Publish(TableAttendanceLogs, "update")
	hub.Publish(TableVacationRequests, "delete")

	first := <-ch
	second := <-ch
	assert.Equal(t, TableAttendanceLogs, first.Table)
	assert.Equal(t, TableVacationRequests, second.Table)
}

func TestHub_CleanupReleasesSubscription(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe(TableVacationRequests)
	require.Equal(t, 1, hub.SubscriberCount(TableVacationRequests))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(TableVacationRequests))

	// Publishing with no subscribers must not panic.
	hub.Publish(TableVacationRequests, "insert")
}

func TestHub_PublishDoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe(TableAttendanceLogs)
	defer cleanup()

	for i := 0; i < 50; i++ {
		hub.Publish(TableAttendanceLogs, "insert")
	}
}

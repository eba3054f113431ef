package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierReplacesCurrent(t *testing.T) {
	scheduler := &manualScheduler{}
	dismissed := 0
	n := NewNotifier(scheduler, func() { dismissed++ })

	n.Show(ToastSuccess, "first")
	n.Show(ToastError, "second")

	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, "✕", current.Icon())

	// the stale timer is a no-op
	require.Equal(t, 2, scheduler.fire(ToastDuration))
	assert.Nil(t, n.Current())
	assert.Equal(t, 1, dismissed)
}

func TestNotifierNewToastAfterDismiss(t *testing.T) {
	scheduler := &manualScheduler{}
	n := NewNotifier(scheduler, nil)

	n.Show(ToastSuccess, "saved")
	scheduler.fire(ToastDuration)
	assert.Nil(t, n.Current())

	n.Show(ToastSuccess, "saved again")
	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "✓", current.Icon())
	assert.Equal(t, 1, scheduler.pending(ToastDuration))
}

package interrupt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	var f Flag
	assert.False(t, f.IsSet())

	f.Set()
	assert.True(t, f.IsSet())

	f.Clear()
	assert.False(t, f.IsSet())
}

func TestNilFlagIsNeverSet(t *testing.T) {
	var f *Flag
	assert.False(t, f.IsSet())
}

func TestNotifyStopClearsFlag(t *testing.T) {
	var f Flag
	f.Set()

	stop := Notify(&f)
	assert.False(t, f.IsSet(), "Notify starts from a lowered flag")

	f.Set()
	stop()
	assert.False(t, f.IsSet())
}

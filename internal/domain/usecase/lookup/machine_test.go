package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachineCycle(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, Idle, m.State())

	first := m.Begin()
	assert.Equal(t, Loading, m.State())
	assert.True(t, m.Finish(first, true))
	assert.Equal(t, Success, m.State())

	second := m.Begin()
	assert.Greater(t, second, first)
	assert.Equal(t, Loading, m.State())
	assert.True(t, m.Finish(second, false))
	assert.Equal(t, Failure, m.State())
}

func TestMachineRejectsSupersededToken(t *testing.T) {
	m := NewMachine()
	stale := m.Begin()
	fresh := m.Begin()

	assert.False(t, m.Finish(stale, true))
	assert.Equal(t, Loading, m.State())
	assert.True(t, m.Finish(fresh, false))
	assert.False(t, m.Finish(fresh, true))
	assert.Equal(t, Failure, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "unknown", State(9).String())
}

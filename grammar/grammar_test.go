package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultReturnsCopy(t *testing.T) {
	g := Default()
	g.DurationMarker = '/'
	assert.Equal(t, '.', Default().DurationMarker)
}

func TestValidateRejectsCollisions(t *testing.T) {
	g := Default()
	g.BarRepeat = g.DurationMarker
	assert.Error(t, g.Validate())

	g = Default()
	g.SubBeatOpener = ' '
	assert.Error(t, g.Validate())

	g = Default()
	g.NoChord = "N C"
	assert.Error(t, g.Validate())
}

func TestTokenHelpers(t *testing.T) {
	g := Default()
	assert := assert.New(t)

	assert.True(g.IsBarRepeat("%"))
	assert.True(g.IsBarRepeat("%%%"))
	assert.False(g.IsBarRepeat("%A"))
	assert.False(g.IsBarRepeat(""))

	assert.True(g.OpensSubBeat("[A"))
	assert.False(g.OpensSubBeat("A]"))
	assert.True(g.ClosesSubBeat("A]"))
	assert.False(g.ClosesSubBeat("[A"))

	assert.Equal(0, g.DurationMarkers("Cm"))
	assert.Equal(3, g.DurationMarkers("Cm..."))
	assert.Equal(1, g.DurationMarkers("A.]"))

	assert.Equal("Cm7", g.Clean("Cm7.."))
	assert.Equal("A", g.Clean("[A"))
	assert.Equal("B", g.Clean("B]"))
	assert.True(g.IsNoChord(g.Clean("NC..")))
}

package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntensity(t *testing.T) {
	for _, i := range Intensities {
		got, ok := ParseIntensity(string(i))
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}

	got, ok := ParseIntensity("RIR 3-4")
	assert.False(t, ok)
	assert.Equal(t, IntensityNone, got)

	got, ok = ParseIntensity("fail")
	assert.False(t, ok)
	assert.Equal(t, IntensityNone, got)
}

func TestIntensityOptions(t *testing.T) {
	options := IntensityOptions()
	assert.Len(t, options, 6)
	assert.Equal(t, IntensityOption{Value: IntensityNone}, options[0])
	assert.Equal(t, IntensityOption{Value: IntensityFail, Color: "#FF4B4B", TextColor: "white"}, options[1])
	assert.Equal(t, IntensityOption{Value: IntensityRIR01, Color: "#FFD700", TextColor: "black"}, options[3])
	assert.Equal(t, IntensityOption{Value: IntensityRIR23, Color: "#2196F3", TextColor: "white"}, options[5])
}

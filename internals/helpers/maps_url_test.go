package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapsSearchURL(t *testing.T) {
	base := "https://www.google.com/maps/search/"

	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Masjid%20Raya%20Hubbul%20Wathan",
		MapsSearchURL(base, "Masjid Raya Hubbul Wathan"))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Jl.%20Pejanggik%20No.1%2C%20Mataram%20%26%20sekitar",
		MapsSearchURL(base, "Jl. Pejanggik No.1, Mataram & sekitar"))
	assert.Equal(t, base+"?api=1&query=a%2Bb", MapsSearchURL(base, "a+b"))
	assert.Equal(t, base+"?api=1&query=", MapsSearchURL(base, ""))
}

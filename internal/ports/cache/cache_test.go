package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysAreNamespaced(t *testing.T) {
	assert.Equal(t, "places:cities", CitiesKey())
	assert.Equal(t, "charts:c1", ChartKey("c1"))
	assert.Equal(t, "horoscope:leo:2026-10-17", HoroscopeKey("Leo", "2026-10-17"))
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeatColor(t *testing.T) {
	testCases := []struct {
		count, max uint64
		want       string
	}{
		{0, 10, "#00ff00"},
		{10, 10, "#ff0000"},
		{5, 10, "#808000"},
		{1, 3, "#55aa00"},
		{0, 0, "#00ff00"},
		{1, 0, "#ff0000"},
		{20, 10, "#ff0000"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, HeatColor(tc.count, tc.max), "count=%d max=%d", tc.count, tc.max)
	}
}

func TestHeatChannels_Range(t *testing.T) {
	for maxCount := uint64(1); maxCount <= 50; maxCount++ {
		for count := uint64(0); count <= maxCount; count++ {
			red, green := HeatChannels(count, maxCount)
			sum := int(red) + int(green)
			assert.True(t, sum >= 254 && sum <= 256, "count=%d max=%d red=%d green=%d", count, maxCount, red, green)
		}
	}

	red, green := HeatChannels(0, 7)
	assert.Equal(t, uint8(0), red)
	assert.Equal(t, uint8(RGBMax), green)

	red, green = HeatChannels(7, 7)
	assert.Equal(t, uint8(RGBMax), red)
	assert.Equal(t, uint8(0), green)
}

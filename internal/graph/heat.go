package graph

import (
	"fmt"
	"math"
)

// RGBMax is the full intensity of a color channel.
const RGBMax = 255

// HeatChannels maps count linearly from cold (green) to hot (red).
// maxCount below 1 is treated as 1 and count is clamped to maxCount.
func HeatChannels(count, maxCount uint64) (red, green uint8) {
	if maxCount < 1 {
		maxCount = 1
	}
	normalized := float64(count) / float64(maxCount)
	if normalized > 1 {
		normalized = 1
	}

	red = uint8(math.Round(RGBMax * normalized))
	green = uint8(math.Round(RGBMax * (1 - normalized)))
	return red, green
}

// HeatColor formats the heat of count as a "#rrgg00" color string.
func HeatColor(count, maxCount uint64) string {
	red, green := HeatChannels(count, maxCount)
	return fmt.Sprintf("#%02x%02x00", red, green)
}

package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Samples         int64 // Primary rays traced
	Rays            int64 // All rays traced, including secondary rays
	Workers         int
	Duration        time.Duration
}

// Pixels returns the number of pixels rendered
func (s RenderStats) Pixels() int {
	return s.Width * s.Height
}

// RaysPerSecond returns the tracing throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Duration.Seconds()
}

// RaysPerSample returns the average number of rays spawned per primary ray
func (s RenderStats) RaysPerSample() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.Rays) / float64(s.Samples)
}

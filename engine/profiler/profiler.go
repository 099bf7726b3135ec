package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Frame time is accumulated from the deltas passed to Tick, so the reported FPS matches what
// the camera integrator sees. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	elapsed        float64
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	lastFPS        float64
	logger         *log.Logger
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second and output goes to the standard logger.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		logger:         log.Default(),
	}
}

// SetInterval changes how often statistics are logged. Non-positive values are ignored.
//
// Parameters:
//   - interval: the logging interval
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// SetLogger redirects the statistics output.
//
// Parameters:
//   - logger: the destination logger, nil restores the standard logger
func (p *Profiler) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	p.logger = logger
}

// FPS returns the frame rate computed at the last logged interval.
//
// Returns:
//   - float64: frames per second, 0 before the first interval elapsed
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}

// Tick should be called once per frame with the frame's delta time.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time, heap usage, allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - deltaTime: seconds since the previous frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(deltaTime float32) bool {
	p.frameCount++
	if deltaTime > 0 {
		p.elapsed += float64(deltaTime)
	}

	if p.elapsed < p.updateInterval.Seconds() {
		return false
	}

	fps := float64(p.frameCount) / p.elapsed
	frameMs := p.elapsed * 1000 / float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / p.elapsed

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Printf("[Profiler] FPS: %.2f (%.2f ms) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, frameMs, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastFPS = fps
	p.frameCount = 0
	p.elapsed = 0
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// benchmark.go
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// Usage is the resource report of one Run.
type Usage struct {
	Elapsed        time.Duration
	AllocMB        float64
	TotalAllocMB   float64
	PeakHeapMB     float64
	GCCycles       uint32
	GoroutinesPre  int
	GoroutinesPost int
}

// Run wraps f, measures its runtime and memory usage and logs the result.
func Run(label string, f func()) Usage {
	host, _ := os.Hostname()
	log.WithFields(log.Fields{
		"host":    host,
		"go":      runtime.Version(),
		"os_arch": runtime.GOOS + "/" + runtime.GOARCH,
		"cpus":    runtime.NumCPU(),
	}).Infof("[Benchmark] Running: %s", label)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	usage := Usage{GoroutinesPre: runtime.NumGoroutine()}

	f()

	usage.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	usage.GoroutinesPost = runtime.NumGoroutine()
	usage.AllocMB = megabytes(int64(memEnd.Alloc) - int64(memStart.Alloc))
	usage.TotalAllocMB = megabytes(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	usage.PeakHeapMB = megabytes(int64(memEnd.HeapAlloc))
	usage.GCCycles = memEnd.NumGC - memStart.NumGC

	log.WithFields(log.Fields{
		"elapsed":        usage.Elapsed,
		"memory_mb":      formatMB(usage.AllocMB),
		"total_alloc_mb": formatMB(usage.TotalAllocMB),
		"peak_heap_mb":   formatMB(usage.PeakHeapMB),
		"gc_cycles":      usage.GCCycles,
		"goroutines":     usage.GoroutinesPost,
	}).Info("[Benchmark] Done")
	return usage
}

func megabytes(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

func formatMB(mb float64) float64 {
	return float64(int64(mb*100)) / 100
}

package scan

import (
	"runtime"
	"sync"
	"time"

	"github.com/byRen2002/tlsh-go/internal/common/logger"
	"go.uber.org/zap"
)

// monitorStats is a snapshot of the scan pipeline's resource usage.
type monitorStats struct {
	Goroutines int
	MemoryBytes uint64
	FilesHashed uint64
	StartTime   time.Time
}

// monitor periodically samples runtime statistics on a ticker and logs
// them, so a long scan of a large tree leaves a trail of progress in
// the log even before it finishes.
type monitor struct {
	mu       sync.RWMutex
	stats    monitorStats
	interval time.Duration
	done     chan struct{}
}

func newMonitor(interval time.Duration) *monitor {
	return &monitor{
		stats:    monitorStats{StartTime: time.Now()},
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (m *monitor) Start() {
	m.done = make(chan struct{})
	go m.run(m.done)
}

func (m *monitor) Stop() {
	close(m.done)
}

func (m *monitor) IncrementFilesHashed() {
	m.mu.Lock()
	m.stats.FilesHashed++
	m.mu.Unlock()
}

func (m *monitor) Stats() monitorStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

func (m *monitor) run(done <-chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sample()
		case <-done:
			return
		}
	}
}

func (m *monitor) sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m.mu.Lock()
	m.stats.Goroutines = runtime.NumGoroutine()
	m.stats.MemoryBytes = memStats.Alloc
	goroutines, memBytes, filesHashed, start := m.stats.Goroutines, m.stats.MemoryBytes, m.stats.FilesHashed, m.stats.StartTime
	m.mu.Unlock()

	logger.Debug("scan progress",
		zap.Int("goroutines", goroutines),
		zap.Uint64("memory_bytes", memBytes),
		zap.Uint64("files_hashed", filesHashed),
		zap.Duration("uptime", time.Since(start)),
	)
}

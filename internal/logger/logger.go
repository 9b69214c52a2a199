package logger

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Production gets JSON output so log
// collectors can parse fields; development keeps the readable text format.
func New(level string, production bool) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}

// StartMemorySampler logs process memory usage at the given interval until
// stop is closed. Best-effort observability, nothing reads these values back.
func StartMemorySampler(log *logrus.Logger, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)
				log.WithFields(logrus.Fields{
					"heap_alloc_mb": m.HeapAlloc / 1024 / 1024,
					"sys_mb":        m.Sys / 1024 / 1024,
					"num_gc":        m.NumGC,
					"goroutines":    runtime.NumGoroutine(),
				}).Debug("memory usage sample")
			case <-stop:
				return
			}
		}
	}()
}

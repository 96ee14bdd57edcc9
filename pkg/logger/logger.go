package logger

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	mux    sync.RWMutex
	logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
		Name:   "movie-tracker",
		Level:  hclog.Info,
		Output: os.Stderr,
	})
)

// Init replaces the process logger. Unknown levels fall back to info.
func Init(level string, jsonFormat bool) hclog.Logger {
	l := hclog.New(&hclog.LoggerOptions{
		Name:       "movie-tracker",
		Level:      parseLevel(level),
		Output:     os.Stderr,
		JSONFormat: jsonFormat,
	})
	Set(l)
	return l
}

func Set(l hclog.Logger) {
	mux.Lock()
	defer mux.Unlock()
	logger = l
}

func Get() hclog.Logger {
	mux.RLock()
	defer mux.RUnlock()
	return logger
}

func Named(name string) hclog.Logger {
	return Get().Named(name)
}

func parseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return hclog.Info
	}
	return l
}

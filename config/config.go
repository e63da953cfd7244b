package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of engine performance.
var (
	TurnDelay       = time.Duration(getEnvInt("TURN_DELAY_MS", 200)) * time.Millisecond
	MaxFrames       = getEnvInt("MAX_FRAMES", 1000)
	MaxQueuedInputs = getEnvInt("MAX_QUEUED_INPUTS", 16)
	WorkerThreads   = getEnvInt("WORKER_THREADS", 10)
	PopRate         = rate.Limit(getEnvInt("POP_RPS", 40))
	PopBurstRate    = getEnvInt("POP_BURST", 10)
)

// Defaults applied to create requests that leave a field empty.
var (
	DefaultWidth       = getEnvInt("DEFAULT_WIDTH", 20)
	DefaultHeight      = getEnvInt("DEFAULT_HEIGHT", 20)
	DefaultStartLength = getEnvInt("DEFAULT_START_LENGTH", 3)
)

// Largest boards a create request may ask for.
var (
	MaxWidth  = getEnvInt("MAX_WIDTH", 256)
	MaxHeight = getEnvInt("MAX_HEIGHT", 256)
)

// PopLimiter returns a limiter for workers polling the store.
func PopLimiter() *rate.Limiter {
	return rate.NewLimiter(PopRate, PopBurstRate)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config wires the evaluation engine's only external collaborator, the
// text normalizer. Absent a service URL the engine runs on the local
// normalizer alone.
type Config struct {
	NormalizerURL     string
	NormalizerTimeout time.Duration
	NormalizerRetries uint
	Language          string
}

func FromEnv() Config {
	return Config{
		NormalizerURL:     os.Getenv("NORMALIZER_URL"),
		NormalizerTimeout: envDuration("NORMALIZER_TIMEOUT_MS", 2000*time.Millisecond),
		NormalizerRetries: uint(envInt("NORMALIZER_RETRIES", 2)),
		Language:          envOr("EVAL_LANGUAGE", "en"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	ms := envInt(k, int(def/time.Millisecond))
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

package env

import (
	"os"
	"strconv"
)

// Get returns the value of the given environment variable or a fallback.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Bool returns the boolean value of the given environment variable or a
// fallback when unset or unparsable.
func Bool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

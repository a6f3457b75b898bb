package util

import (
	"os"
	"strconv"
)

// Getenv will return an environment variable or a default value
func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}

// GetenvInt returns an environment variable as an int or the default value if it's not set or not a number
func GetenvInt(key string, defaultValue int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return val
}

// SetEnv sets an environment variable and returns a function that puts the previous value back
func SetEnv(key, value string) func() {
	previous, found := os.LookupEnv(key)
	_ = os.Setenv(key, value)

	return func() {
		if found {
			_ = os.Setenv(key, previous)
			return
		}

		_ = os.Unsetenv(key)
	}
}

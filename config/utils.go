package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnv(key string, required bool) string {
	value := os.Getenv(key)
	if required && value == "" {
		log.Fatalf("environment variable not found: %s", key)
	}
	return value
}

func getEnvDuration(key string, required bool) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		if required {
			log.Fatalf("environment variable not found: %s", key)
		}
		return 0
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid time.Duration value %q for environment variable %s: %v", value, key, err)
	}
	return duration
}

func getEnvBool(key string, required bool, defaultValue bool) bool {
	valueStr := getEnv(key, required)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("invalid boolean value for environment variable %s", key)
	}
	return value
}

func getStringsArrEnv(key string, required bool) []string {
	value := os.Getenv(key)
	if required && value == "" {
		log.Fatalf("environment variable not found: %s", key)
	}
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func getInt64Env(key string, required bool) int64 {
	value := os.Getenv(key)
	if value == "" {
		if required {
			log.Fatalf("environment variable not found: %s", key)
		}
		return 0
	}
	valueInt64, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("invalid int64 value for environment variable %s", key)
	}
	return valueInt64
}

package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	EnvDevMode     = GetEnvBool("QFACTOR_DEVMODE", false)
	EnvMaxAttempts = GetEnvInt("QFACTOR_MAXATTEMPTS", 0)
	EnvCeiling     = GetEnvDefault("QFACTOR_CEILING", "")
	EnvNoProgress  = GetEnvBool("QFACTOR_NOPROGRESS", false)
	EnvParallel    = GetEnvInt("QFACTOR_PARALLEL", 0)
)

func GetEnvTrimmed(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val := strings.TrimSpace(v)
	if os.Getenv("QFACTOR_DEBUG") != "" {
		fmt.Println("ENV", key, "detected as", val)
	}
	return val, true
}

func GetEnvBool(key string, def bool) bool {
	if val, ok := GetEnvTrimmed(key); ok {
		switch val {
		case "1":
			return true
		case "0":
			return false
		default:
			return def
		}
	}
	return def
}

func GetEnvDefault(key string, def string) string {
	if val, ok := GetEnvTrimmed(key); ok {
		return val
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if val, ok := GetEnvTrimmed(key); ok {
		num, err := strconv.Atoi(val)
		if err != nil {
			return def
		}
		return num
	}
	return def
}

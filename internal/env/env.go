package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given file into the process environment.
// A missing file is not an error; deployed environments set real env vars.
func LoadEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

func GetString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}

	return val
}

func GetInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	valAsInt, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return valAsInt
}

func GetBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	boolVal, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return boolVal
}

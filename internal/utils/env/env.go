package env

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func AttemptReadLocalEnvironment(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

func MustGet(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		log.Fatal("Could not get value for environment variable ", key)
	}
	return v
}

func CanGet(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func CanGetInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(CanGet(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func CanGetBool(key string) bool {
	v, err := strconv.ParseBool(CanGet(key))
	if err != nil {
		return false
	}
	return v
}

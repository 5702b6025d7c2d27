package util

import (
	"fmt"
	"os"
)

func GetEnvVariable(name string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		panic(fmt.Sprintf("missing required environment variable: %s", name))
	}
	return value
}

func GetEnvVariableWithDefault(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

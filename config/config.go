package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Server is the process-level configuration read from the environment.
type Server struct {
	Addr           string
	TuningFile     string
	DefaultRoom    string
	AllowedOrigins []string
}

// InitConfig loads variables from .env when the file exists. A missing file is
// fine; the real environment still applies.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("config: no .env file, using process environment")
			return
		}
		log.Fatalf("config: loading .env: %v", err)
	}

	log.Println("config: loaded environment variables from .env")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

func getEnvOr(v, fallback string) string {
	if b, err := GetEnvVariable(v); err == nil {
		return b
	}
	return fallback
}

// Load reads the server configuration, falling back to defaults for anything unset.
func Load() Server {
	s := Server{
		Addr:        getEnvOr("BURRS_ADDR", ":8080"),
		TuningFile:  getEnvOr("BURRS_TUNING_FILE", ""),
		DefaultRoom: strings.ToUpper(getEnvOr("BURRS_DEFAULT_ROOM", "MAIN")),
	}
	for _, o := range strings.Split(getEnvOr("BURRS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			s.AllowedOrigins = append(s.AllowedOrigins, o)
		}
	}
	return s
}

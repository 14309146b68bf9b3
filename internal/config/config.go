package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	DatasetPath        string
	DBPath             string
	HTTPPort           string
	OutputDir          string
	ScorerURL          string
	LowSampleThreshold int
	EnableWatcher      bool
}

// Load reads configuration from environment and optional .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatasetPath:        getenv("DATASET_PATH", "./Churn_Modelling.csv"),
		DBPath:             getenv("DB_PATH", "./churn.db"),
		HTTPPort:           getenv("PORT", "8080"),
		OutputDir:          getenv("OUTPUT_DIR", "./outputs"),
		ScorerURL:          getenv("SCORER_URL", ""),
		LowSampleThreshold: getenvInt("LOW_SAMPLE_THRESHOLD", 30),
		EnableWatcher:      getenvBool("ENABLE_WATCHER", true),
	}

	log.Printf("config: dataset=%s db=%s port=%s output=%s", cfg.DatasetPath, cfg.DBPath, cfg.HTTPPort, cfg.OutputDir)
	return cfg
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

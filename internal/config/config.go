package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

// MatchingConfig selects the ranking strategy for the similarity endpoint.
// Scorer is "keyword" or "embedding"; the embedding scorer needs an API key.
type MatchingConfig struct {
	Scorer         string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	EmbeddingModel string
}

const (
	ScorerKeyword   = "keyword"
	ScorerEmbedding = "embedding"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:   optInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:   optInt32("DB_POOL_MIN_CONNS"),
	}

	scorer := strings.ToLower(opt("MATCH_SCORER"))
	if scorer == "" {
		scorer = ScorerKeyword
	}
	if scorer != ScorerKeyword && scorer != ScorerEmbedding {
		return Config{}, fmt.Errorf("invalid MATCH_SCORER %q: want %q or %q", scorer, ScorerKeyword, ScorerEmbedding)
	}
	cfg.Matching = MatchingConfig{
		Scorer:         scorer,
		OpenAIAPIKey:   opt("OPENAI_API_KEY"),
		OpenAIBaseURL:  opt("OPENAI_BASE_URL"),
		EmbeddingModel: opt("EMBEDDING_MODEL"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func optInt32(key string) int32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

// README: Smoke and load runner against a live tripsense API, catalog database and cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	results := NewRunner(cfg).RunAll(ctx)

	fmt.Println("\n== Summary ==")
	counts := map[Status]int{}
	for _, r := range results {
		counts[r.Status]++
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", counts[StatusPass], counts[StatusFail], counts[StatusSkip])

	if counts[StatusFail] > 0 || (cfg.Strict && counts[StatusSkip] > 0) {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL        string
	DSN            string
	RedisAddr      string
	MigrationPath  string
	ApplyMigration bool
	Strict         bool
	Timeout        time.Duration
	Concurrency    int
	Duration       time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("TRIPSENSE_BENCH_BASE_URL", "http://localhost:8080"), "API base URL")
	flag.StringVar(&cfg.DSN, "dsn", os.Getenv("TRIPSENSE_DB_DSN"), "Postgres DSN (empty skips DB checks)")
	flag.StringVar(&cfg.RedisAddr, "redis", os.Getenv("TRIPSENSE_REDIS_ADDR"), "Redis address (empty skips cache checks)")
	flag.StringVar(&cfg.MigrationPath, "migration", "migrations/0001_catalog.sql", "Catalog migration path")
	flag.BoolVar(&cfg.ApplyMigration, "apply-migration", false, "Apply the migration before checks")
	flag.BoolVar(&cfg.Strict, "strict", false, "Treat skipped checks as failures")
	flag.DurationVar(&cfg.Timeout, "timeout", 60*time.Second, "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", 20, "Workers for load checks")
	flag.DurationVar(&cfg.Duration, "duration", 10*time.Second, "Duration of each load check")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

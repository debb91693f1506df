// README: Bench checks; API contract, catalog tables, cache reachability and load.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Status  Status
	Latency time.Duration
	Note    string
}

type Check struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
			defer db.Close()
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
		defer r.redis.Close()
	}

	checks := r.checks()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		res := c.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, c.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) checks() []Check {
	base := r.cfg.BaseURL
	return []Check{
		{Name: "Env: Postgres connect", Run: pingDB},
		{Name: "Env: Redis connect", Run: pingRedis},
		{Name: "Migration: apply (optional)", Run: applyMigration},
		{Name: "Migration: catalog tables exist", Run: tablesExist},
		{Name: "Catalog: every mode has options", Run: modesStocked},

		httpCase("API: health", http.MethodGet, base+"/health", nil, http.StatusOK),
		httpCase("API: intent (valid)", http.MethodPost, base+"/api/intent",
			map[string]any{"query": "weekend in goa under 10k"}, http.StatusOK),
		httpCase("API: intent (missing query -> 400)", http.MethodPost, base+"/api/intent",
			map[string]any{}, http.StatusBadRequest),
		httpCase("API: intent (non-string query -> 400)", http.MethodPost, base+"/api/intent",
			map[string]any{"query": 12}, http.StatusBadRequest),
		httpCase("API: plan (valid)", http.MethodPost, base+"/api/plan",
			map[string]any{"intent": map[string]any{"destination": "Manali", "duration": 4}}, http.StatusOK),
		httpCase("API: plan (intent not object -> 400)", http.MethodPost, base+"/api/plan",
			map[string]any{"intent": "manali"}, http.StatusBadRequest),
		httpCase("API: plan (duration out of range -> 400)", http.MethodPost, base+"/api/plan",
			map[string]any{"intent": map[string]any{"duration": 90}}, http.StatusBadRequest),
		httpCase("API: recommend (valid)", http.MethodPost, base+"/api/recommend",
			map[string]any{"destination": "Goa"}, http.StatusOK),
		httpCase("API: recommend (missing destination -> 400)", http.MethodPost, base+"/api/recommend",
			map[string]any{}, http.StatusBadRequest),
		httpCase("API: trip (valid)", http.MethodPost, base+"/api/trip",
			map[string]any{"query": "family trip to jaipur for 3 days"}, http.StatusOK),
		httpCase("API: metrics", http.MethodGet, base+"/metrics", nil, http.StatusOK),

		{Name: "Perf: intent throughput", Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, base+"/api/intent", map[string]any{"query": "5 days in kerala in december, peaceful"})
		}},
		{Name: "Perf: recommend throughput", Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, base+"/api/recommend", map[string]any{"destination": "Goa"})
		}},
	}
}

func pingDB(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusSkip, Note: "dsn not set"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.db.Ping(ctx); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func pingRedis(ctx context.Context, r *Runner) Result {
	if r.redis == nil {
		return Result{Status: StatusSkip, Note: "redis not set"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func applyMigration(ctx context.Context, r *Runner) Result {
	if !r.cfg.ApplyMigration {
		return Result{Status: StatusSkip, Note: "apply-migration=false"}
	}
	if r.db == nil {
		return Result{Status: StatusFail, Note: "dsn not set"}
	}
	sql, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, stmt := range splitSQL(string(sql)) {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
	}
	return Result{Status: StatusPass}
}

func tablesExist(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusSkip, Note: "dsn not set"}
	}
	tables, err := extractTables(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, t := range tables {
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", t,
		).Scan(&exists)
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		if !exists {
			return Result{Status: StatusFail, Note: "missing table: " + t}
		}
	}
	return Result{Status: StatusPass, Note: strings.Join(tables, ",")}
}

func modesStocked(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusSkip, Note: "dsn not set"}
	}
	rows, err := r.db.Query(ctx, `SELECT mode FROM transport_options GROUP BY mode`)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	defer rows.Close()

	var have []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		have = append(have, m)
	}
	if err := rows.Err(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, want := range []string{"flight", "train", "bus", "cab"} {
		if !slices.Contains(have, want) {
			return Result{Status: StatusFail, Note: "no options for " + want}
		}
	}
	return Result{Status: StatusPass}
}

func httpCase(name, method, url string, body any, want int) Check {
	return Check{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			req.Header.Set("Content-Type", "application/json")

			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			latency := time.Since(start)

			note := fmt.Sprintf("status=%d", resp.StatusCode)
			if resp.StatusCode != want {
				return Result{Status: StatusFail, Latency: latency, Note: note}
			}
			return Result{Status: StatusPass, Latency: latency, Note: note}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)

	var ok, failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					failed.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					failed.Add(1)
					continue
				}
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	if ok.Load() == 0 {
		return Result{Status: StatusFail, Note: fmt.Sprintf("no successful requests, errors=%d", failed.Load())}
	}
	rps := float64(ok.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, failed.Load())}
}

var createTablePattern = regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	matches := createTablePattern.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "--") {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

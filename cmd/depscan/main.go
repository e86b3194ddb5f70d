// Command depscan scans a project for vulnerable dependencies and reports
// which of those vulnerabilities are actually reachable from the project's
// own entry points.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/crgimenes/goconfig"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quay/zlog"
	"github.com/rs/zerolog"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/feedback"
	"github.com/reachlab/depscan/internal/feedcache"
	"github.com/reachlab/depscan/internal/format"
	"github.com/reachlab/depscan/internal/reachability"
	"github.com/reachlab/depscan/internal/risk"
	"github.com/reachlab/depscan/internal/scan"
	"github.com/reachlab/depscan/internal/telemetry"
	"github.com/reachlab/depscan/internal/vulnfeed"
)

// Config carries the ambient settings shared across every subcommand,
// loaded from flags and environment variables via goconfig. Per-invocation
// options (output format, severity filters, the project path itself) are
// each subcommand's own flag.FlagSet, in the shape of the teacher's
// cmd/cctool per-subcommand flags.
type Config struct {
	LogLevel          string `cfgDefault:"info" cfg:"LOG_LEVEL" cfgHelper:"debug, info, warning, error, fatal, panic"`
	TelemetryEnabled  bool   `cfgDefault:"false" cfg:"TELEMETRY_ENABLED"`
	TelemetryEndpoint string `cfgDefault:"localhost:4317" cfg:"TELEMETRY_ENDPOINT"`

	MaxWalkDepth        int `cfgDefault:"10" cfg:"MAX_WALK_DEPTH"`
	MaxDependencies     int `cfgDefault:"10000" cfg:"MAX_DEPENDENCIES_PER_MANIFEST"`
	MaxTraversalDepth   int `cfgDefault:"100" cfg:"MAX_TRAVERSAL_DEPTH"`
	EntryPointThreshold float64 `cfgDefault:"0.6" cfg:"ENTRY_POINT_THRESHOLD"`

	EnableOSVFeed      bool   `cfgDefault:"true" cfg:"ENABLE_OSV_FEED"`
	EnableOVALFeed     bool   `cfgDefault:"false" cfg:"ENABLE_OVAL_FEED"`
	OVALFeedURL        string `cfgDefault:"" cfg:"OVAL_FEED_URL"`
	OVALDistribution   string `cfgDefault:"" cfg:"OVAL_DISTRIBUTION"`
	EnableEPSSEnricher bool   `cfgDefault:"true" cfg:"ENABLE_EPSS_ENRICHER"`
	EnableKEVEnricher  bool   `cfgDefault:"true" cfg:"ENABLE_KEV_ENRICHER"`

	CacheBackend       string `cfgDefault:"sqlite" cfg:"CACHE_BACKEND" cfgHelper:"sqlite (on-disk default) or postgres"`
	CacheDir           string `cfgDefault:"" cfg:"CACHE_DIR" cfgHelper:"defaults to $HOME/.depscan/cache"`
	CacheSecret        string `cfgDefault:"depscan-development-secret" cfg:"CACHE_SECRET" cfgHelper:"HMAC key signing cache entries; override in production"`
	CacheTTL           string `cfgDefault:"24h" cfg:"CACHE_TTL"`
	PostgresConnString string `cfgDefault:"" cfg:"POSTGRES_CONNECTION_STRING"`
	PostgresTable      string `cfgDefault:"feed_cache" cfg:"POSTGRES_CACHE_TABLE"`

	EnableLearnedModel bool   `cfgDefault:"false" cfg:"ENABLE_LEARNED_MODEL"`
	ModelPath          string `cfgDefault:"" cfg:"MODEL_PATH" cfgHelper:"defaults to $HOME/.depscan/model.json"`
	FeedbackDir        string `cfgDefault:"" cfg:"FEEDBACK_DIR" cfgHelper:"defaults to $HOME/.depscan"`
}

type subcmd func(context.Context, *Config, []string) error

var cleanup sync.WaitGroup

func main() {
	var exit int
	defer func() {
		if exit != 0 {
			os.Exit(exit)
		}
	}()

	ctx, done := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		<-ch
		done()
	}()

	var cfg Config
	if err := goconfig.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "depscan: failed to parse config: %v\n", err)
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger().
		Level(parseLogLevel(cfg.LogLevel))
	zlog.Set(&log)

	fs := flag.NewFlagSet("depscan", flag.ExitOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nSubcommands\n\n")
		fmt.Fprintln(out, "scan <path>\n\tscan a project and report reachable vulnerabilities")
		fmt.Fprintln(out, "feedback\n\trecord a human verdict against a prior finding")
		fmt.Fprintln(out, "ml train|status\n\ttrain (or report on) the learned risk model")
		fmt.Fprintln(out, "cache clear\n\tdiscard the vulnerability-feed cache")
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}

	var cmd subcmd
	switch n := fs.Arg(0); n {
	case "scan":
		cmd = Scan
	case "feedback":
		cmd = Feedback
	case "ml":
		cmd = ML
	case "cache":
		cmd = Cache
	case "":
		fs.Usage()
		os.Exit(99)
	default:
		fs.Usage()
		fmt.Fprintf(os.Stderr, "\nunknown subcommand %q\n", n)
		os.Exit(99)
	}

	var cmdErr error
	cmdctx, cmddone := context.WithCancel(ctx)
	go func() {
		defer cmddone()
		cmdErr = cmd(cmdctx, &cfg, fs.Args()[1:])
	}()

	select {
	case <-ctx.Done():
		log.Error().Err(ctx.Err()).Msg("interrupted")
		exit = 1
	case <-cmdctx.Done():
		if cmdErr != nil {
			log.Error().Err(cmdErr).Msg("command failed")
			exit = exitCodeFor(cmdErr)
		}
	}
	cleanup.Wait()
}

// exitErr lets a subcommand pick its own exit code for the "reachable
// findings present" case, distinct from a plain error.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if e, ok := err.(*exitErr); ok {
		return e.code
	}
	return 1
}

func parseLogLevel(s string) zerolog.Level {
	if l, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

// Scan implements the `scan` subcommand.
func Scan(ctx context.Context, cfg *Config, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	outputName := fs.String("output", "json", "output format: json, table, sarif, html, markdown")
	outputFile := fs.String("out", "", "write output here instead of stdout")
	minConfidence := fs.Float64("min-confidence", 0, "minimum finding confidence to report")
	minSeverity := fs.String("min-severity", "", "minimum severity to report (negligible, low, medium, high, critical)")
	reachableOnly := fs.Bool("reachable-only", false, "report only reachable findings")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
		zlog.Set(&l)
	}

	root := fs.Arg(0)
	if root == "" {
		root = "."
	}
	var minSev depscan.Severity
	if *minSeverity != "" {
		sev, ok := parseSeverity(*minSeverity)
		if !ok {
			return &exitErr{code: 1, err: fmt.Errorf("scan: unrecognized --min-severity %q", *minSeverity)}
		}
		minSev = sev
	}

	client := &http.Client{Timeout: 30 * time.Second}
	var feeds []vulnfeed.Feed
	if cfg.EnableOSVFeed {
		feeds = append(feeds, vulnfeed.NewOSVFeed(client))
	}
	if cfg.EnableOVALFeed && cfg.OVALFeedURL != "" {
		feeds = append(feeds, vulnfeed.NewOVALFeed(client, cfg.OVALFeedURL, cfg.OVALDistribution))
	}
	var enrichers []vulnfeed.Enricher
	if cfg.EnableEPSSEnricher {
		enrichers = append(enrichers, vulnfeed.NewEPSSEnricher(client))
	}
	if cfg.EnableKEVEnricher {
		enrichers = append(enrichers, vulnfeed.NewKEVEnricher(client))
	}

	cache, err := buildCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("scan: build feed cache: %w", err)
	}

	scorer := &risk.Scorer{}
	if cfg.EnableLearnedModel {
		if m, err := risk.Load(modelPath(cfg)); err == nil {
			scorer.Model = m
		} else {
			zlog.Warn(ctx).Err(err).Msg("scan: no usable learned model, falling back to default weights")
		}
	}

	shutdownTelemetry, err := telemetry.Bootstrap(ctx, cfg.TelemetryEnabled, cfg.TelemetryEndpoint)
	if err != nil {
		return fmt.Errorf("scan: bootstrap telemetry: %w", err)
	}
	defer shutdownTelemetry(ctx)
	phases := &telemetry.Phases{Metrics: telemetry.NewPhaseMetrics()}

	reach := reachability.DefaultOptions()
	reach.MaxDepth = clampInt(cfg.MaxTraversalDepth, 1, reachability.AbsoluteDepthCap)

	result, err := scan.Run(ctx, scan.Options{
		Root:                root,
		MaxDepth:            cfg.MaxWalkDepth,
		MaxDependencies:     cfg.MaxDependencies,
		Feeds:               feeds,
		Enrichers:           enrichers,
		Cache:               cache,
		Scorer:              scorer,
		Reachability:        reach,
		EntryPointThreshold: cfg.EntryPointThreshold,
		Telemetry:           phases,
	})
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	filtered := filterResult(result, *minConfidence, minSev, *reachableOnly)

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return fmt.Errorf("scan: open output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := format.ForName(format.Name(*outputName)).Write(out, filtered); err != nil {
		return fmt.Errorf("scan: write output: %w", err)
	}

	if filtered.Statistics.ReachableFindings > 0 {
		return &exitErr{code: 1, err: fmt.Errorf("scan: %d reachable finding(s)", filtered.Statistics.ReachableFindings)}
	}
	return nil
}

// filterResult applies the scan subcommand's reporting filters without
// touching scan.Run's own Statistics, which always reflect the full,
// unfiltered run.
func filterResult(result *scan.Result, minConfidence float64, minSeverity depscan.Severity, reachableOnly bool) *scan.Result {
	kept := depscan.NewFindingSet()
	for root, keys := range result.Findings.WorkspaceFindings {
		for _, key := range keys {
			f := result.Findings.Findings[key]
			if f == nil {
				continue
			}
			if reachableOnly && !f.Reachable {
				continue
			}
			if f.Confidence < minConfidence {
				continue
			}
			if f.Vulnerability.Severity < minSeverity {
				continue
			}
			kept.Add(root, f)
		}
	}
	kept.Sort()
	return &scan.Result{Statistics: result.Statistics, Findings: kept}
}

func buildCache(ctx context.Context, cfg *Config) (vulnfeed.QueryCache, error) {
	ttl, err := time.ParseDuration(cfg.CacheTTL)
	if err != nil {
		ttl = 24 * time.Hour
	}
	type feedResult = map[depscan.DependencyKey][]depscan.Vulnerability

	switch cfg.CacheBackend {
	case "postgres":
		if cfg.PostgresConnString == "" {
			return nil, fmt.Errorf("cache backend postgres requires POSTGRES_CONNECTION_STRING")
		}
		pool, err := pgxpool.New(ctx, cfg.PostgresConnString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres cache: %w", err)
		}
		pc := feedcache.NewPostgresCache[feedResult](pool, cfg.PostgresTable, ttl)
		if err := pc.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure postgres cache schema: %w", err)
		}
		return pc, nil
	default:
		dir := cfg.CacheDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, feedback.DefaultDir, "cache")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		return feedcache.New[feedResult](dir, []byte(cfg.CacheSecret), ttl), nil
	}
}

func modelPath(cfg *Config) string {
	if cfg.ModelPath != "" {
		return cfg.ModelPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "model.json"
	}
	return filepath.Join(home, feedback.DefaultDir, "model.json")
}

func feedbackDir(cfg *Config) string {
	return cfg.FeedbackDir
}

func clampInt(v, lo, hi int) int {
	if v <= 0 {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var severityByName = map[string]depscan.Severity{
	"negligible": depscan.Negligible,
	"low":        depscan.Low,
	"medium":     depscan.Medium,
	"high":       depscan.High,
	"critical":   depscan.Critical,
}

func parseSeverity(s string) (depscan.Severity, bool) {
	sev, ok := severityByName[strings.ToLower(s)]
	return sev, ok
}

// Feedback implements the `feedback` subcommand.
func Feedback(ctx context.Context, cfg *Config, args []string) error {
	fs := flag.NewFlagSet("feedback", flag.ExitOnError)
	vulnID := fs.String("vulnerability-id", "", "canonical vulnerability ID this feedback concerns")
	verdict := fs.String("verdict", "", "true_positive, false_positive, or unsure")
	riskOverride := fs.Float64("risk-override", -1, "optional override risk score in [0,100]")
	featuresFile := fs.String("features-frozen-file", "", "optional JSON array of the 16 feature values scored at finding time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := depscan.FeedbackVerdict(*verdict)
	switch v {
	case depscan.TruePositive, depscan.FalsePositive, depscan.Unsure:
	default:
		return &exitErr{code: 1, err: fmt.Errorf("feedback: --verdict must be one of true_positive, false_positive, unsure")}
	}
	if *vulnID == "" {
		return &exitErr{code: 1, err: fmt.Errorf("feedback: --vulnerability-id is required")}
	}

	rec := depscan.Feedback{
		VulnerabilityID: *vulnID,
		Verdict:         v,
		Timestamp:       time.Now().UTC(),
	}
	if *riskOverride >= 0 {
		o := *riskOverride
		rec.OptionalRiskOverride = &o
	}
	if *featuresFile != "" {
		b, err := os.ReadFile(*featuresFile)
		if err != nil {
			return &exitErr{code: 1, err: fmt.Errorf("feedback: read features file: %w", err)}
		}
		if err := json.Unmarshal(b, &rec.FeaturesFrozen); err != nil {
			return &exitErr{code: 1, err: fmt.Errorf("feedback: decode features file: %w", err)}
		}
	}

	store, err := feedback.New(feedbackDir(cfg))
	if err != nil {
		return fmt.Errorf("feedback: open store: %w", err)
	}
	if err := store.Append(rec); err != nil {
		return fmt.Errorf("feedback: append record: %w", err)
	}
	zlog.Info(ctx).Str("id", rec.ID).Str("vulnerability_id", rec.VulnerabilityID).Msg("feedback: recorded")
	return nil
}

// ML implements the `ml train` and `ml status` subcommands.
func ML(ctx context.Context, cfg *Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("ml: expected a subcommand (train, status)")
	}
	store, err := feedback.New(feedbackDir(cfg))
	if err != nil {
		return fmt.Errorf("ml: open feedback store: %w", err)
	}

	switch args[0] {
	case "train":
		records, err := store.All()
		if err != nil {
			return fmt.Errorf("ml: read feedback: %w", err)
		}
		model, err := risk.Train(records, risk.DefaultTrainOptions())
		if err != nil {
			return fmt.Errorf("ml: train: %w", err)
		}
		path := modelPath(cfg)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("ml: create model directory: %w", err)
		}
		if err := risk.Save(path, model); err != nil {
			return fmt.Errorf("ml: save model: %w", err)
		}
		zlog.Info(ctx).Str("path", path).Int("records", len(records)).Msg("ml: trained model")
		return nil
	case "status":
		count, err := store.Count()
		if err != nil {
			return fmt.Errorf("ml: count feedback: %w", err)
		}
		fmt.Printf("feedback records: %d\n", count)
		if m, err := risk.Load(modelPath(cfg)); err != nil {
			fmt.Println("learned model: none loaded (" + err.Error() + ")")
		} else {
			fmt.Printf("learned model: version %d, %d weights\n", m.Version, len(m.Weights))
		}
		return nil
	default:
		return fmt.Errorf("ml: unknown subcommand %q", args[0])
	}
}

// Cache implements the `cache clear` subcommand.
func Cache(ctx context.Context, cfg *Config, args []string) error {
	if len(args) == 0 || args[0] != "clear" {
		return fmt.Errorf("cache: expected subcommand \"clear\"")
	}

	if cfg.CacheBackend == "postgres" {
		if cfg.PostgresConnString == "" {
			return fmt.Errorf("cache clear: postgres backend requires POSTGRES_CONNECTION_STRING")
		}
		pool, err := pgxpool.New(ctx, cfg.PostgresConnString)
		if err != nil {
			return fmt.Errorf("cache clear: connect postgres: %w", err)
		}
		defer pool.Close()
		table := cfg.PostgresTable
		if table == "" {
			table = "feed_cache"
		}
		if _, err := pool.Exec(ctx, `TRUNCATE TABLE "`+table+`"`); err != nil {
			return fmt.Errorf("cache clear: truncate %s: %w", table, err)
		}
		zlog.Info(ctx).Str("table", table).Msg("cache: cleared postgres cache")
		return nil
	}

	dir := cfg.CacheDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, feedback.DefaultDir, "cache")
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	zlog.Info(ctx).Str("dir", dir).Msg("cache: cleared disk cache")
	return nil
}

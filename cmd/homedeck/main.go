package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/content"
	"github.com/homedeck/homedeck/pkg/domain"
	"github.com/homedeck/homedeck/pkg/feed"
	"github.com/homedeck/homedeck/pkg/llm"
	"github.com/homedeck/homedeck/pkg/metrics"
	"github.com/homedeck/homedeck/pkg/power"
	"github.com/homedeck/homedeck/pkg/remote"
	"github.com/homedeck/homedeck/pkg/repository"
	"github.com/homedeck/homedeck/pkg/summary"
	"github.com/homedeck/homedeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting homedeck version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	cancel()
	log.Print("[INFO] shutdown complete")
}

// run loads the configuration, wires the services and starts the HTTP server
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	usage := metrics.NewTracker()

	// the model host and every controlled device have their own ssh accounts,
	// executors carry only the key and the timeouts
	gpuRunner := remote.NewExecutor(cfg.LLM.GPU.KeyFile, 0, 0)
	model := llm.NewClient(cfg.LLM, gpuRunner, usage)

	sources := make([]feed.Source, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		sources[i] = feed.Source{Name: f.Name, URL: f.URL}
	}
	registry := feed.NewRegistry(sources)
	fetcher := feed.NewHTTPFetcher(cfg.News.Timeout, cfg.News.MaxItems, usage)
	extractor := content.NewExtractor(cfg.News.Timeout, cfg.News.MinParagraph, usage)
	summarizer := summary.NewService(repos.Cache, model, cfg.LLM.Language)

	devices := make([]domain.Device, len(cfg.Devices))
	for i, d := range cfg.Devices {
		devices[i] = domain.Device{Name: d.Name, Host: d.Host, MAC: d.MAC, SSHUser: d.SSHUser}
	}
	powerRunner := remote.NewExecutor(cfg.Power.SSHKeyFile, 0, 0)
	manager := power.NewManager(devices, power.NewProbe(0), power.NewMagicPacket(""), powerRunner, cfg.Power)

	srv := server.New(cfg, server.Deps{
		Model:     model,
		Power:     manager,
		Registry:  registry,
		Fetcher:   fetcher,
		Extractor: extractor,
		Summarize: summarizer,
		Cache:     repos.Cache,
		Articles:  repos.Article,
		Prefs:     config.NewPrefs(cfg.Prefs.Path),
		Usage:     usage,
		NewWorker: func() server.BacklogWorker {
			return summary.NewWorker(model, extractor, summarizer, repos.Cache, cfg.News.SummaryDelay)
		},
	}, revision, opts.Debug)

	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

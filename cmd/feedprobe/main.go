// Command feedprobe exercises the feed and extraction pipeline against live
// sources. It fetches each configured feed, prints the first entry and runs
// the content extractor over its link, which is how a misbehaving site's
// structure gets diagnosed before touching the reader.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/content"
	"github.com/homedeck/homedeck/pkg/feed"
	"github.com/homedeck/homedeck/pkg/metrics"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Source string `short:"s" long:"source" description:"probe a single source by name"`
	Dbg    bool   `long:"dbg" description:"debug mode"`
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLog(opts.Dbg)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	sources := make([]feed.Source, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		sources[i] = feed.Source{Name: f.Name, URL: f.URL}
	}

	probe := sources
	if opts.Source != "" {
		src, ok := feed.NewRegistry(sources).Lookup(opts.Source)
		if !ok {
			log.Printf("[ERROR] unknown source %q", opts.Source)
			os.Exit(1)
		}
		probe = []feed.Source{src}
	}

	usage := metrics.NewTracker()
	fetcher := feed.NewHTTPFetcher(cfg.News.Timeout, cfg.News.MaxItems, usage)
	extractor := content.NewExtractor(cfg.News.Timeout, cfg.News.MinParagraph, usage)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, src := range probe {
		probeSource(ctx, src, fetcher, extractor)
	}

	snap := usage.Snapshot()
	fmt.Printf("traffic: %d bytes received, %d bytes sent\n", snap.RxBytes, snap.TxBytes)
}

// probeSource fetches one feed and runs the extractor over its first entry
func probeSource(ctx context.Context, src feed.Source, fetcher *feed.HTTPFetcher, extractor *content.Extractor) {
	fmt.Printf("--- %s ---\n", src.Name)
	fmt.Printf("url: %s\n", src.URL)

	items, err := fetcher.Fetch(ctx, src)
	if err != nil {
		fmt.Printf("fetch failed: %v\n", err)
		return
	}
	fmt.Printf("entries: %d\n", len(items))
	if len(items) == 0 {
		return
	}

	first := items[0]
	fmt.Printf("first title: %s\n", first.Title)
	fmt.Printf("first link: %s\n", first.Link)
	if first.Published != "" {
		fmt.Printf("published: %s\n", first.Published)
	} else {
		fmt.Println("published: not provided by the feed")
	}

	res := extractor.Extract(ctx, first.Link)
	if res.Degraded {
		fmt.Printf("extraction degraded: %s\n", res.Reason)
		return
	}
	fmt.Printf("extracted: %d chars\n", utf8.RuneCountInString(res.Text))
	fmt.Printf("snippet: %s\n", snippet(res.Text, 200))
}

// snippet cuts s to at most limit runes
func snippet(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

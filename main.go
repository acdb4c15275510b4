package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/henrique-coder/syncgroove/internal/app"
	"github.com/henrique-coder/syncgroove/internal/downloader"
	"github.com/henrique-coder/syncgroove/internal/fetcher"
	"github.com/henrique-coder/syncgroove/internal/humanizer"
	"github.com/henrique-coder/syncgroove/internal/log"
)

func main() {
	var opts app.Options
	var jobs int
	var timeout time.Duration
	var channel string
	var logLevel string

	flag.StringVar(&opts.PreferredQuality, "quality", "all", "preferred video quality (all, best or e.g. 1080p)")
	flag.StringVar(&opts.PreferredLanguage, "language", "auto", "preferred audio language (all, original, auto or a language code)")
	flag.BoolVar(&opts.InfoOnly, "info", false, "dump normalized media info as JSON without downloading")
	flag.BoolVar(&opts.AudioOnly, "audio", false, "download best audio only and produce a tagged mp3")
	flag.StringVar(&opts.OutputDir, "o", ".", "output directory for downloaded media")
	flag.StringVar(&opts.InfoDir, "json-dir", "", "directory for per-item analysis dumps (implies writing dumps)")
	flag.StringVar(&channel, "channel", "", "process a whole channel (id, url or @handle)")
	flag.IntVar(&jobs, "jobs", 1, "number of concurrent items")
	flag.DurationVar(&timeout, "timeout", 3*time.Minute, "per-request timeout")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log.Configure(log.Config{Level: logLevel})
	logger := log.WithComponent("cli")

	opts.SystemLanguage = localeLanguage()

	args := flag.Args()
	if len(args) == 0 && channel == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <url|playlist|query> [...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(humanizer.ExitCode(humanizer.CategorizedError{Category: humanizer.CategoryInvalidURL}))
	}

	ctx := context.Background()
	fetcherClient := fetcher.New(fetcher.Options{Timeout: timeout})

	urls, err := expandInputs(ctx, fetcherClient, args, channel)
	if err != nil {
		logger.Error().Err(err).Msg("resolving inputs")
		os.Exit(humanizer.ExitCode(err))
	}
	if len(urls) == 0 {
		logger.Error().Msg("no media found for the given inputs")
		os.Exit(humanizer.ExitCode(humanizer.CategorizedError{Category: humanizer.CategoryUnsupported}))
	}

	pipeline := app.NewPipeline(fetcherClient, downloader.New(timeout), opts)
	results, failures := app.Run(ctx, urls, jobs, pipeline.Process)
	for _, result := range results {
		if result.Err != nil {
			logger.Error().Str("url", result.URL).Err(result.Err).Msg("item failed")
		}
	}
	if failures > 0 {
		logger.Error().Int("failed", failures).Int("total", len(results)).Msg("finished with failures")
		os.Exit(1)
	}
}

// expandInputs turns each CLI argument into one or more watch URLs:
// playlist URLs enumerate their members, recognizable media URLs pass
// through, and anything else is treated as a search query.
func expandInputs(ctx context.Context, client *fetcher.Client, args []string, channel string) ([]string, error) {
	var urls []string

	if channel != "" {
		selector := channelSelector(channel)
		channelURLs, err := client.ChannelURLs(ctx, selector)
		if err != nil {
			return nil, err
		}
		urls = append(urls, channelURLs...)
	}

	for _, arg := range args {
		if _, err := humanizer.ExtractPlaylistID(arg); err == nil {
			playlistURLs, err := client.PlaylistURLs(ctx, arg)
			if err != nil {
				return nil, err
			}
			urls = append(urls, playlistURLs...)
			continue
		}
		if id, err := humanizer.ExtractMediaID(arg); err == nil {
			urls = append(urls, humanizer.WatchURL(id))
			continue
		}
		if strings.HasPrefix(arg, "@") {
			channelURLs, err := client.ChannelURLs(ctx, fetcher.ChannelSelector{Username: arg})
			if err != nil {
				return nil, err
			}
			urls = append(urls, channelURLs...)
			continue
		}
		found, err := client.FromQuery(ctx, arg)
		if err != nil {
			return nil, err
		}
		if found != "" {
			urls = append(urls, found)
		}
	}

	return urls, nil
}

func channelSelector(value string) fetcher.ChannelSelector {
	switch {
	case strings.Contains(value, "://"):
		return fetcher.ChannelSelector{URL: value}
	case strings.HasPrefix(value, "UC") && len(value) == 24:
		return fetcher.ChannelSelector{ID: value}
	default:
		return fetcher.ChannelSelector{Username: value}
	}
}

// localeLanguage derives the two-letter language code from the process
// locale, feeding the engine's "auto" audio mode.
func localeLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, "_.@"); i > 0 {
			value = value[:i]
		}
		if value != "" && value != "C" && value != "POSIX" {
			return strings.ToLower(value)
		}
	}
	return "en"
}

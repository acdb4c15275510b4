// Package app wires the fetcher, engine, downloader and transcoder into a
// per-URL pipeline and runs batches of URLs over a worker pool.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/henrique-coder/syncgroove/internal/downloader"
	"github.com/henrique-coder/syncgroove/internal/fetcher"
	"github.com/henrique-coder/syncgroove/internal/humanizer"
	"github.com/henrique-coder/syncgroove/internal/log"
	"github.com/henrique-coder/syncgroove/internal/transcoder"
)

// Options configure a pipeline run.
type Options struct {
	// PreferredQuality and PreferredLanguage narrow the ranked catalogs.
	PreferredQuality  string
	PreferredLanguage string
	// SystemLanguage feeds the "auto" language mode. It is resolved once
	// at startup instead of read from the environment per call.
	SystemLanguage string
	// InfoOnly dumps the normalized analysis as JSON instead of
	// downloading anything.
	InfoOnly bool
	// AudioOnly skips the video stream and produces a tagged mp3.
	AudioOnly bool
	// OutputDir receives downloaded media files.
	OutputDir string
	// InfoDir, when set, receives per-item analysis dumps.
	InfoDir string
}

// Pipeline processes single watch URLs end to end.
type Pipeline struct {
	fetcher    *fetcher.Client
	downloader *downloader.Client
	opts       Options
	logger     zerolog.Logger
}

func NewPipeline(fetcherClient *fetcher.Client, downloaderClient *downloader.Client, opts Options) *Pipeline {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Pipeline{
		fetcher:    fetcherClient,
		downloader: downloaderClient,
		opts:       opts,
		logger:     log.WithComponent("pipeline"),
	}
}

// Process fetches, normalizes and (unless InfoOnly) downloads one media
// item.
func (p *Pipeline) Process(ctx context.Context, url string) error {
	payload, err := p.fetcher.Resolve(ctx, url)
	if err != nil {
		return err
	}

	analysis, err := humanizer.Analyze(payload, humanizer.Options{
		PreferredQuality:  p.opts.PreferredQuality,
		PreferredLanguage: p.opts.PreferredLanguage,
		SystemLanguage:    p.opts.SystemLanguage,
	})
	if err != nil {
		return err
	}

	name := baseName(analysis.MediaInfo)
	p.logger.Info().Str("id", name).Msg("normalized media")

	if p.opts.InfoDir != "" || p.opts.InfoOnly {
		if err := p.writeAnalysis(analysis, name); err != nil {
			return err
		}
	}
	if p.opts.InfoOnly {
		return nil
	}

	if p.opts.AudioOnly {
		return p.downloadAudio(ctx, analysis, name)
	}
	return p.downloadVideo(ctx, analysis, name)
}

func (p *Pipeline) downloadVideo(ctx context.Context, analysis *humanizer.Analysis, name string) error {
	stream := analysis.BestVideoStream
	if stream == nil || stream.URL == nil {
		return humanizer.WrapCategory(humanizer.CategoryUnsupported, fmt.Errorf("no video stream matches the requested quality"))
	}
	dest := filepath.Join(p.opts.OutputDir, name+"."+stream.Extension)
	_, err := p.downloader.Fetch(ctx, *stream.URL, dest)
	return err
}

func (p *Pipeline) downloadAudio(ctx context.Context, analysis *humanizer.Analysis, name string) error {
	stream := analysis.BestAudioStream
	if stream == nil || stream.URL == nil {
		return humanizer.WrapCategory(humanizer.CategoryUnsupported, fmt.Errorf("no audio stream matches the requested language"))
	}

	raw := filepath.Join(p.opts.OutputDir, "."+name+".source."+stream.Extension)
	defer os.Remove(raw)
	if _, err := p.downloader.Fetch(ctx, *stream.URL, raw); err != nil {
		return err
	}

	dest := filepath.Join(p.opts.OutputDir, name+".mp3")
	if err := transcoder.ToAudio(ctx, raw, dest); err != nil {
		return err
	}
	if err := transcoder.EmbedTags(dest, transcoder.TagsFromMediaInfo(analysis.MediaInfo)); err != nil {
		// Tags are cosmetic; keep the file and report the failure.
		p.logger.Warn().Err(err).Str("file", dest).Msg("tag embedding failed")
	}
	return nil
}

func (p *Pipeline) writeAnalysis(analysis *humanizer.Analysis, name string) error {
	dump, err := analysis.Dump()
	if err != nil {
		return err
	}
	if p.opts.InfoDir == "" {
		_, err := os.Stdout.Write(dump)
		return err
	}
	if err := os.MkdirAll(p.opts.InfoDir, 0o755); err != nil {
		return humanizer.WrapCategory(humanizer.CategoryFilesystem, err)
	}
	path := filepath.Join(p.opts.InfoDir, name+".json")
	if err := os.WriteFile(path, dump, 0o644); err != nil {
		return humanizer.WrapCategory(humanizer.CategoryFilesystem, err)
	}
	return nil
}

// baseName picks a filesystem-safe stem for output files: the sanitized
// title when available, the media id otherwise.
func baseName(info humanizer.MediaInfo) string {
	if info.CleanTitle != nil && *info.CleanTitle != "" {
		return *info.CleanTitle
	}
	if info.ID != nil && strings.TrimSpace(*info.ID) != "" {
		return *info.ID
	}
	return "media"
}

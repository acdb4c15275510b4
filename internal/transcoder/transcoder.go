// Package transcoder re-encodes downloaded audio through ffmpeg and embeds
// metadata tags. It is a thin collaborator; stream choice and metadata
// normalization happen upstream.
package transcoder

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
	"github.com/henrique-coder/syncgroove/internal/log"
)

// Available reports whether the ffmpeg binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// ToAudio re-encodes src into dst, picking the codec from dst's extension.
func ToAudio(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !Available() {
		return humanizer.WrapCategory(humanizer.CategoryTranscode, fmt.Errorf("ffmpeg not found in PATH"))
	}

	kwargs := ffmpeg.KwArgs{"vn": ""}
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".mp3":
		kwargs["acodec"] = "libmp3lame"
		kwargs["q:a"] = "2"
	case ".m4a", ".aac":
		kwargs["acodec"] = "aac"
		kwargs["b:a"] = "192k"
	case ".opus", ".webm":
		kwargs["acodec"] = "libopus"
		kwargs["b:a"] = "160k"
	default:
		kwargs["acodec"] = "copy"
	}

	logger := log.WithComponent("transcoder")
	logger.Debug().Str("src", src).Str("dst", dst).Msg("transcoding")
	err := ffmpeg.Input(src).
		Output(dst, kwargs).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return humanizer.WrapCategory(humanizer.CategoryTranscode, fmt.Errorf("transcoding %s: %w", filepath.Base(src), err))
	}
	return nil
}

// Package humanizer normalizes raw, heterogeneous media metadata payloads
// into clean, deterministic, ranked views of the available video, audio and
// subtitle streams. It performs no I/O: fetching the payload is the
// fetcher's job, and every call is independent and idempotent.
package humanizer

import (
	"bytes"
	"encoding/json"
)

// Options control how ranked catalogs are narrowed to a preference.
type Options struct {
	// PreferredQuality is "all", "best" or an explicit label like "1080p".
	PreferredQuality string
	// PreferredLanguage is "all", "original", "auto" or a language code.
	PreferredLanguage string
	// SystemLanguage is the caller's locale language code, consulted only
	// by the "auto" mode. It is injected rather than read from the
	// environment so the engine stays pure.
	SystemLanguage string
}

// Analysis is the complete normalized view of one raw payload. It is built
// once per call and not mutated afterwards.
type Analysis struct {
	MediaInfo MediaInfo `json:"mediaInfo"`

	VideoStreams            []VideoStream `json:"videoStreams"`
	BestVideoStream         *VideoStream  `json:"bestVideoStream"`
	AvailableVideoQualities []string      `json:"availableVideoQualities"`

	AudioStreams            []AudioStream `json:"audioStreams"`
	BestAudioStream         *AudioStream  `json:"bestAudioStream"`
	AvailableAudioLanguages []string      `json:"availableAudioLanguages"`

	Subtitles SubtitleCatalog `json:"subtitles"`
}

// Analyze runs the full pipeline: catalogs, ranking and selection. The
// payload flows one way through the stages; selection produces narrowed
// views while the availability lists always reflect the full ranking.
func Analyze(payload RawPayload, opts Options) (*Analysis, error) {
	info, err := BuildMediaInfo(payload)
	if err != nil {
		return nil, err
	}

	videoRanking, err := RankVideoStreams(payload)
	if err != nil {
		return nil, err
	}
	audioRanking, err := RankAudioStreams(payload)
	if err != nil {
		return nil, err
	}
	subtitles, err := BuildSubtitleCatalog(payload)
	if err != nil {
		return nil, err
	}

	videoSelection := SelectVideoStreams(videoRanking, opts.PreferredQuality)
	audioSelection := SelectAudioStreams(audioRanking, opts.PreferredLanguage, opts.SystemLanguage)

	return &Analysis{
		MediaInfo:               info,
		VideoStreams:            videoSelection.Streams,
		BestVideoStream:         videoSelection.Best,
		AvailableVideoQualities: videoRanking.Qualities,
		AudioStreams:            audioSelection.Streams,
		BestAudioStream:         audioSelection.Best,
		AvailableAudioLanguages: audioRanking.Languages,
		Subtitles:               subtitles,
	}, nil
}

// Dump renders the analysis as indented JSON with stable key order.
func (a *Analysis) Dump() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

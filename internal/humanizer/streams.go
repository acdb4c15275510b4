package humanizer

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VideoStream is one video encoding variant that survived classification.
type VideoStream struct {
	URL          *string  `json:"url"`
	Codec        *string  `json:"codec"`
	CodecVariant *string  `json:"codecVariant"`
	RawCodec     string   `json:"rawCodec"`
	Extension    string   `json:"extension"`
	Width        *int     `json:"width"`
	Height       *int     `json:"height"`
	Framerate    *float64 `json:"framerate"`
	Bitrate      *float64 `json:"bitrate"`
	Quality      *int     `json:"quality"`
	QualityNote  *string  `json:"qualityNote"`
	IsHDR        bool     `json:"isHDR"`
	Size         *int64   `json:"size"`
	Language     *string  `json:"language"`
	FormatID     int      `json:"youtubeFormatId"`
}

// AudioStream is one audio encoding variant that survived classification.
type AudioStream struct {
	URL             *string  `json:"url"`
	Codec           *string  `json:"codec"`
	CodecVariant    *string  `json:"codecVariant"`
	RawCodec        string   `json:"rawCodec"`
	Extension       string   `json:"extension"`
	Bitrate         *float64 `json:"bitrate"`
	QualityNote     *string  `json:"qualityNote"`
	IsOriginalAudio bool     `json:"isOriginalAudio"`
	Size            *int64   `json:"size"`
	SampleRate      *int     `json:"samplerate"`
	Channels        *int     `json:"channels"`
	Language        *string  `json:"language"`
	FormatID        int      `json:"youtubeFormatId"`
}

// VideoRanking is the full video catalog sorted best-first.
type VideoRanking struct {
	Streams []VideoStream `json:"streams"`
	// Qualities lists "{height}p" labels in ranked order, de-duplicated.
	Qualities []string `json:"availableQualities"`
}

// AudioRanking is the full audio catalog sorted best-first.
type AudioRanking struct {
	Streams []AudioStream `json:"streams"`
	// Languages lists lower-cased language codes in ranked order,
	// de-duplicated.
	Languages []string `json:"availableLanguages"`
}

// formatEntries pulls the format list out of the payload. An absent list is
// an empty catalog; a present list of the wrong shape is malformed input.
func formatEntries(payload RawPayload) ([]RawPayload, error) {
	if payload == nil {
		return nil, WrapCategory(CategoryMalformed, errors.New("payload is not a map"))
	}
	value, ok := payload["formats"]
	if !ok || value == nil {
		return nil, nil
	}
	switch list := value.(type) {
	case []any:
		entries := make([]RawPayload, 0, len(list))
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, WrapCategory(CategoryMalformed, errors.New("format entry is not a map"))
			}
			entries = append(entries, entry)
		}
		return entries, nil
	case []RawPayload:
		return list, nil
	default:
		return nil, WrapCategory(CategoryMalformed, fmt.Errorf("formats has unexpected type %T", value))
	}
}

// parseFormatID extracts the leading numeric component of the raw format_id
// ("137-drc" yields 137). Unparsable ids drop the entry.
func parseFormatID(entry RawPayload) (int, bool) {
	value, ok := lookup(entry, "format_id", "")
	if !ok {
		return 0, false
	}
	s, ok := asString(value)
	if !ok {
		if f, okNum := asFloat(value); okNum {
			return int(f), true
		}
		return 0, false
	}
	head, _, _ := strings.Cut(s, "-")
	id, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return id, true
}

// codecFamily splits "av01.0.08M.08" into family "av01" and variant
// "0.08M.08".
func codecFamily(raw string) (family, variant *string) {
	if raw == "" {
		return nil, nil
	}
	head, tail, found := strings.Cut(raw, ".")
	family = &head
	if found {
		variant = &tail
	}
	return family, variant
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func intOrZero(value *int) float64 {
	if value == nil {
		return 0
	}
	return float64(*value)
}

// videoScore is the quality heuristic for video streams. Missing factors
// count as zero.
func videoScore(s VideoStream) float64 {
	return intOrZero(s.Width) * intOrZero(s.Height) * floatOrZero(s.Framerate) * floatOrZero(s.Bitrate)
}

// audioScore weighs bitrate against sample rate.
func audioScore(s AudioStream) float64 {
	return floatOrZero(s.Bitrate)*0.4 + intOrZero(s.SampleRate)/1000
}

// RankVideoStreams classifies and ranks the payload's video formats,
// best-first. An entry participates only when its vcodec field is present
// and not the "none" sentinel and its format id is a key of the video
// classification table. Ties keep source order.
func RankVideoStreams(payload RawPayload) (VideoRanking, error) {
	entries, err := formatEntries(payload)
	if err != nil {
		return VideoRanking{}, err
	}

	streams := make([]VideoStream, 0, len(entries))
	for _, entry := range entries {
		codec := getString(entry, "vcodec", "")
		if codec == nil || *codec == "none" {
			continue
		}
		formatID, ok := parseFormatID(entry)
		if !ok {
			continue
		}
		extension, ok := videoFormatExtensions[formatID]
		if !ok {
			continue
		}

		family, variant := codecFamily(*codec)
		height := getIntSize(entry, "height")
		note := getString(entry, "format_note", "")

		streams = append(streams, VideoStream{
			URL:          getString(entry, "url", ""),
			Codec:        family,
			CodecVariant: variant,
			RawCodec:     *codec,
			Extension:    extension,
			Width:        getIntSize(entry, "width"),
			Height:       height,
			Framerate:    getFloat(entry, "fps", ""),
			Bitrate:      getFloat(entry, "tbr", ""),
			Quality:      height,
			QualityNote:  note,
			IsHDR:        note != nil && strings.Contains(strings.ToLower(*note), "hdr"),
			Size:         getInt(entry, "filesize", ""),
			Language:     getString(entry, "language", ""),
			FormatID:     formatID,
		})
	}

	sort.SliceStable(streams, func(i, j int) bool {
		return videoScore(streams[i]) > videoScore(streams[j])
	})

	return VideoRanking{Streams: streams, Qualities: availableQualities(streams)}, nil
}

// RankAudioStreams classifies and ranks the payload's audio formats,
// best-first, using the audio classification table.
func RankAudioStreams(payload RawPayload) (AudioRanking, error) {
	entries, err := formatEntries(payload)
	if err != nil {
		return AudioRanking{}, err
	}

	streams := make([]AudioStream, 0, len(entries))
	for _, entry := range entries {
		codec := getString(entry, "acodec", "")
		if codec == nil || *codec == "none" {
			continue
		}
		formatID, ok := parseFormatID(entry)
		if !ok {
			continue
		}
		if _, ok := audioFormatExtensions[formatID]; !ok {
			continue
		}

		family, variant := codecFamily(*codec)
		note := getString(entry, "format_note", "")

		streams = append(streams, AudioStream{
			URL:             getString(entry, "url", ""),
			Codec:           family,
			CodecVariant:    variant,
			RawCodec:        *codec,
			Extension:       audioExtension(formatID),
			Bitrate:         getFloat(entry, "abr", ""),
			QualityNote:     note,
			IsOriginalAudio: isOriginalAudioNote(note),
			Size:            getInt(entry, "filesize", ""),
			SampleRate:      getIntSize(entry, "asr"),
			Channels:        getIntSize(entry, "audio_channels"),
			Language:        getString(entry, "language", ""),
			FormatID:        formatID,
		})
	}

	sort.SliceStable(streams, func(i, j int) bool {
		return audioScore(streams[i]) > audioScore(streams[j])
	})

	return AudioRanking{Streams: streams, Languages: availableLanguages(streams)}, nil
}

// audioExtension resolves the container for a classified audio stream. The
// fallback is defensive only: table membership was already checked.
func audioExtension(formatID int) string {
	if extension, ok := audioFormatExtensions[formatID]; ok {
		return extension
	}
	return fallbackAudioExtension
}

// isOriginalAudioNote reports whether a quality note marks the track as the
// default/native audio. Two heuristics exist in the wild: an explicit
// "(default)" marker, and an entirely lower-case note. Both are accepted
// here; neither is authoritative (see DESIGN.md).
func isOriginalAudioNote(note *string) bool {
	if note == nil || *note == "" {
		return false
	}
	if strings.Contains(*note, "(default)") {
		return true
	}
	return *note == strings.ToLower(*note) && *note != strings.ToUpper(*note)
}

func availableQualities(streams []VideoStream) []string {
	seen := make(map[int]bool, len(streams))
	qualities := make([]string, 0, len(streams))
	for _, stream := range streams {
		if stream.Quality == nil || seen[*stream.Quality] {
			continue
		}
		seen[*stream.Quality] = true
		qualities = append(qualities, fmt.Sprintf("%dp", *stream.Quality))
	}
	return qualities
}

func availableLanguages(streams []AudioStream) []string {
	seen := make(map[string]bool, len(streams))
	languages := make([]string, 0, len(streams))
	for _, stream := range streams {
		if stream.Language == nil {
			continue
		}
		language := strings.ToLower(*stream.Language)
		if seen[language] {
			continue
		}
		seen[language] = true
		languages = append(languages, language)
	}
	return languages
}

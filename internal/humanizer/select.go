package humanizer

import (
	"strconv"
	"strings"
)

// VideoSelection is a narrowed view over a ranked video catalog. The
// ranking it was produced from is left untouched.
type VideoSelection struct {
	Streams []VideoStream `json:"streams"`
	Best    *VideoStream  `json:"best"`
}

// AudioSelection is a narrowed view over a ranked audio catalog.
type AudioSelection struct {
	Streams []AudioStream `json:"streams"`
	Best    *AudioStream  `json:"best"`
}

// SelectVideoStreams narrows a ranking by preferred quality. "all" (or
// blank) keeps the full list; "best" keeps every stream at the maximum
// available quality label; an explicit label like "720p" keeps matching
// streams when that label is available and otherwise behaves like "best".
// An empty selection is a valid outcome, not an error.
func SelectVideoStreams(ranking VideoRanking, preferredQuality string) VideoSelection {
	streams := ranking.Streams
	mode := strings.ToLower(strings.TrimSpace(preferredQuality))

	if mode != "" && mode != "all" && len(streams) > 0 {
		if mode == "best" || !containsString(ranking.Qualities, mode) {
			streams = filterVideoQuality(streams, maxQuality(streams))
		} else if target, err := strconv.Atoi(strings.TrimSuffix(mode, "p")); err == nil {
			streams = filterVideoQuality(streams, &target)
		}
	}

	return VideoSelection{Streams: streams, Best: firstVideo(streams)}
}

// SelectAudioStreams narrows a ranking by preferred language. "all" (or
// blank) keeps the full list; "original" keeps original-audio tracks;
// "auto" matches systemLanguage against the available languages and falls
// back to "original" when it is not offered; any other value is an exact
// case-insensitive language match with no fallback, so an unavailable
// language yields an empty selection.
func SelectAudioStreams(ranking AudioRanking, preferredLanguage, systemLanguage string) AudioSelection {
	streams := ranking.Streams
	mode := strings.ToLower(strings.TrimSpace(preferredLanguage))

	switch mode {
	case "", "all":
	case "auto":
		locale := strings.ToLower(strings.TrimSpace(systemLanguage))
		if locale != "" && containsString(ranking.Languages, locale) {
			streams = filterAudioLanguage(streams, locale)
		} else {
			streams = filterOriginalAudio(streams)
		}
	case "original":
		streams = filterOriginalAudio(streams)
	default:
		streams = filterAudioLanguage(streams, mode)
	}

	return AudioSelection{Streams: streams, Best: firstAudio(streams)}
}

func filterVideoQuality(streams []VideoStream, quality *int) []VideoStream {
	if quality == nil {
		return streams
	}
	kept := make([]VideoStream, 0, len(streams))
	for _, stream := range streams {
		if stream.Quality != nil && *stream.Quality == *quality {
			kept = append(kept, stream)
		}
	}
	return kept
}

func filterAudioLanguage(streams []AudioStream, language string) []AudioStream {
	kept := make([]AudioStream, 0, len(streams))
	for _, stream := range streams {
		if stream.Language != nil && strings.EqualFold(*stream.Language, language) {
			kept = append(kept, stream)
		}
	}
	return kept
}

func filterOriginalAudio(streams []AudioStream) []AudioStream {
	kept := make([]AudioStream, 0, len(streams))
	for _, stream := range streams {
		if stream.IsOriginalAudio {
			kept = append(kept, stream)
		}
	}
	return kept
}

func maxQuality(streams []VideoStream) *int {
	var best *int
	for _, stream := range streams {
		if stream.Quality == nil {
			continue
		}
		if best == nil || *stream.Quality > *best {
			quality := *stream.Quality
			best = &quality
		}
	}
	return best
}

func firstVideo(streams []VideoStream) *VideoStream {
	if len(streams) == 0 {
		return nil
	}
	best := streams[0]
	return &best
}

func firstAudio(streams []AudioStream) *AudioStream {
	if len(streams) == 0 {
		return nil
	}
	best := streams[0]
	return &best
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

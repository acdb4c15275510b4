package humanizer

import (
	"fmt"
	"regexp"
)

var (
	mediaIDPattern    = regexp.MustCompile(`(?i)(?:youtu\.be/|youtube(?:-nocookie)?\.com/(?:watch\?(?:[^#\s]*&)?v=|embed/|shorts/|live/|e/|v/))([0-9A-Za-z_-]{11})`)
	playlistIDPattern = regexp.MustCompile(`(?i)(?:youtube\.com|youtu\.be)/[^\s"']*[?&]list=([0-9A-Za-z_-]{34})`)
)

// ExtractMediaID pulls the 11-character media identifier out of a YouTube
// URL (watch, short, embed, shorts, live and nocookie forms). Input that
// matches no recognized pattern yields a CategoryInvalidURL error, never a
// guessed identifier.
func ExtractMediaID(raw string) (string, error) {
	match := mediaIDPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", WrapCategory(CategoryInvalidURL, fmt.Errorf("no media id found in %q", raw))
	}
	return match[1], nil
}

// ExtractPlaylistID pulls the 34-character playlist identifier out of a
// YouTube URL.
func ExtractPlaylistID(raw string) (string, error) {
	match := playlistIDPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", WrapCategory(CategoryInvalidURL, fmt.Errorf("no playlist id found in %q", raw))
	}
	return match[1], nil
}

func WatchURL(id string) string { return "https://www.youtube.com/watch?v=" + id }
func ShortURL(id string) string { return "https://youtu.be/" + id }
func EmbedURL(id string) string { return "https://www.youtube.com/embed/" + id }

package transcoder

import (
	"strconv"
	"time"

	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
)

// TrackTags is the subset of media info embedded into an audio file.
type TrackTags struct {
	Title  string
	Artist string
	Year   int
}

// TagsFromMediaInfo projects a normalized media record onto embeddable
// tags. The sanitized title is preferred so tags match the file name.
func TagsFromMediaInfo(info humanizer.MediaInfo) TrackTags {
	tags := TrackTags{}
	if info.CleanTitle != nil {
		tags.Title = *info.CleanTitle
	} else if info.Title != nil {
		tags.Title = *info.Title
	}
	if info.ChannelName != nil {
		tags.Artist = *info.ChannelName
	}
	if info.UploadTimestamp != nil {
		tags.Year = time.Unix(*info.UploadTimestamp, 0).UTC().Year()
	}
	return tags
}

// EmbedTags writes ID3v2 tags into an mp3 file.
func EmbedTags(path string, tags TrackTags) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return humanizer.WrapCategory(humanizer.CategoryTranscode, err)
	}
	defer tag.Close()

	if tags.Title != "" {
		tag.SetTitle(tags.Title)
	}
	if tags.Artist != "" {
		tag.SetArtist(tags.Artist)
	}
	if tags.Year != 0 {
		tag.AddTextFrame(tag.CommonID("Year"), tag.DefaultEncoding(), strconv.Itoa(tags.Year))
	}
	if err := tag.Save(); err != nil {
		return humanizer.WrapCategory(humanizer.CategoryTranscode, err)
	}
	return nil
}

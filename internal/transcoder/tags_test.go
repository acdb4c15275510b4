package transcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
)

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestTagsFromMediaInfo(t *testing.T) {
	info := humanizer.MediaInfo{
		Title:           strPtr("Song / Official"),
		CleanTitle:      strPtr("Song Official"),
		ChannelName:     strPtr("Artist"),
		UploadTimestamp: int64Ptr(1256601600), // 2009-10-27 UTC
	}

	tags := TagsFromMediaInfo(info)
	assert.Equal(t, "Song Official", tags.Title, "sanitized title wins")
	assert.Equal(t, "Artist", tags.Artist)
	assert.Equal(t, 2009, tags.Year)
}

func TestTagsFromMediaInfoFallsBackToRawTitle(t *testing.T) {
	info := humanizer.MediaInfo{Title: strPtr("日本語タイトル")}
	tags := TagsFromMediaInfo(info)
	assert.Equal(t, "日本語タイトル", tags.Title)
	assert.Zero(t, tags.Year)
}

package humanizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() RawPayload {
	return RawPayload{
		"id":                     "dQw4w9WgXcQ",
		"fulltitle":              "Rick Astley - Never Gonna Give You Up (Official Music Video)",
		"channel":                "Rick Astley",
		"channel_id":             "UCuAXFkgsw1L7xaCfnd5JJOw",
		"uploader_url":           "https://www.youtube.com/@RickAstley",
		"channel_is_verified":    true,
		"description":            "The official video.",
		"duration":               212.0,
		"view_count":             1500000000.0,
		"age_limit":              0.0,
		"categories":             []any{"Music"},
		"tags":                   []any{"rick astley", "pop"},
		"is_live":                false,
		"timestamp":              1256601600.0,
		"availability":           "public",
		"comment_count":          2200000.0,
		"like_count":             16000000.0,
		"channel_follower_count": 3500000.0,
		"language":               "en",
		"chapters": []any{
			map[string]any{"title": "Intro", "start_time": 0.0, "end_time": 10.5},
			map[string]any{"title": "Chorus", "start_time": 10.5, "end_time": 60.0},
		},
	}
}

func TestBuildMediaInfo(t *testing.T) {
	info, err := BuildMediaInfo(samplePayload())
	require.NoError(t, err)

	require.NotNil(t, info.ID)
	assert.Equal(t, "dQw4w9WgXcQ", *info.ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", info.FullURL)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", info.ShortURL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", info.EmbedURL)
	assert.True(t, info.IsVerifiedChannel)

	require.NotNil(t, info.CleanTitle)
	assert.Equal(t, "Rick Astley - Never Gonna Give You Up (Official Music Video)", *info.CleanTitle)

	require.NotNil(t, info.IsAgeRestricted)
	assert.False(t, *info.IsAgeRestricted)

	require.Len(t, info.Chapters, 2)
	require.NotNil(t, info.Chapters[0].Title)
	assert.Equal(t, "Intro", *info.Chapters[0].Title)
	require.NotNil(t, info.Chapters[1].EndTime)
	assert.Equal(t, 60.0, *info.Chapters[1].EndTime)

	require.Len(t, info.Thumbnails, 5)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", info.Thumbnails[0])
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg", info.Thumbnails[4])
}

func TestBuildMediaInfoDeterministic(t *testing.T) {
	first, err := BuildMediaInfo(samplePayload())
	require.NoError(t, err)
	second, err := BuildMediaInfo(samplePayload())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("records differ (-first +second):\n%s", diff)
	}

	firstDump, err := first.Dump()
	require.NoError(t, err)
	secondDump, err := second.Dump()
	require.NoError(t, err)
	assert.Equal(t, firstDump, secondDump, "dumps must be byte-identical")
}

func TestBuildMediaInfoDumpKeyOrder(t *testing.T) {
	info, err := BuildMediaInfo(samplePayload())
	require.NoError(t, err)
	dump, err := info.Dump()
	require.NoError(t, err)

	// Keys appear in alphabetical order in the serialized record.
	availability := strings.Index(string(dump), `"availability"`)
	id := strings.Index(string(dump), `"id"`)
	viewCount := strings.Index(string(dump), `"viewCount"`)
	require.Positive(t, availability)
	assert.Less(t, availability, id)
	assert.Less(t, id, viewCount)
}

func TestBuildMediaInfoSparsePayload(t *testing.T) {
	info, err := BuildMediaInfo(RawPayload{"title": "short", "uploader": "someone"})
	require.NoError(t, err)

	assert.Nil(t, info.ID)
	require.NotNil(t, info.Title)
	assert.Equal(t, "short", *info.Title)
	require.NotNil(t, info.ChannelName)
	assert.Equal(t, "someone", *info.ChannelName)
	assert.Nil(t, info.Duration)
	assert.Nil(t, info.IsAgeRestricted)
	assert.Empty(t, info.Categories)
	assert.Empty(t, info.Chapters)
	assert.False(t, info.IsVerifiedChannel)
}

func TestBuildMediaInfoBlankTitleHasNilCleanTitle(t *testing.T) {
	info, err := BuildMediaInfo(RawPayload{"title": "   "})
	require.NoError(t, err)
	require.NotNil(t, info.Title)
	assert.Nil(t, info.CleanTitle)
}

func TestBuildMediaInfoNilPayload(t *testing.T) {
	_, err := BuildMediaInfo(nil)
	require.Error(t, err)
	assert.Equal(t, CategoryMalformed, ErrorCategory(err))
}

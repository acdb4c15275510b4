package humanizer

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Chapter is one named section of a media item.
type Chapter struct {
	Title     *string  `json:"title"`
	StartTime *float64 `json:"startTime"`
	EndTime   *float64 `json:"endTime"`
}

// MediaInfo is the immutable per-item record derived from a raw payload.
// Fields are declared in canonical (alphabetical) key order so serialized
// dumps are deterministic.
type MediaInfo struct {
	Availability      *string   `json:"availability"`
	Categories        []string  `json:"categories"`
	ChannelID         *string   `json:"channelId"`
	ChannelName       *string   `json:"channelName"`
	ChannelURL        *string   `json:"channelUrl"`
	Chapters          []Chapter `json:"chapters"`
	CleanChannelName  *string   `json:"cleanChannelName"`
	CleanTitle        *string   `json:"cleanTitle"`
	CommentCount      *int64    `json:"commentCount"`
	Description       *string   `json:"description"`
	Duration          *float64  `json:"duration"`
	EmbedURL          string    `json:"embedUrl"`
	FollowCount       *int64    `json:"followCount"`
	FullURL           string    `json:"fullUrl"`
	ID                *string   `json:"id"`
	IsAgeRestricted   *bool     `json:"isAgeRestricted"`
	IsStreaming       *bool     `json:"isStreaming"`
	IsVerifiedChannel bool      `json:"isVerifiedChannel"`
	Language          *string   `json:"language"`
	LikeCount         *int64    `json:"likeCount"`
	ShortURL          string    `json:"shortUrl"`
	Tags              []string  `json:"tags"`
	Thumbnails        []string  `json:"thumbnails"`
	Title             *string   `json:"title"`
	UploadTimestamp   *int64    `json:"uploadTimestamp"`
	ViewCount         *int64    `json:"viewCount"`
}

// thumbnailVariants are ordered highest resolution first. The URLs are
// synthesized from the media id, never fetched or validated.
var thumbnailVariants = []string{"maxresdefault", "sddefault", "hqdefault", "mqdefault", "default"}

// BuildMediaInfo projects a raw payload into a MediaInfo record. Missing or
// wrong-typed optional fields degrade to nil or their documented default;
// only a nil payload is malformed input.
func BuildMediaInfo(payload RawPayload) (MediaInfo, error) {
	if payload == nil {
		return MediaInfo{}, WrapCategory(CategoryMalformed, errors.New("payload is not a map"))
	}

	id := getString(payload, "id", "")
	idValue := ""
	if id != nil {
		idValue = *id
	}

	title := getString(payload, "fulltitle", "title")
	channelName := getString(payload, "channel", "uploader")

	info := MediaInfo{
		Availability:      getString(payload, "availability", ""),
		Categories:        getStringList(payload, "categories"),
		ChannelID:         getString(payload, "channel_id", ""),
		ChannelName:       channelName,
		ChannelURL:        getString(payload, "uploader_url", "channel_url"),
		Chapters:          buildChapters(payload),
		CleanChannelName:  cleanOf(channelName),
		CleanTitle:        cleanOf(title),
		CommentCount:      getInt(payload, "comment_count", ""),
		Description:       getString(payload, "description", ""),
		Duration:          getFloat(payload, "duration", ""),
		EmbedURL:          EmbedURL(idValue),
		FollowCount:       getInt(payload, "channel_follower_count", ""),
		FullURL:           WatchURL(idValue),
		ID:                id,
		IsAgeRestricted:   getBool(payload, "age_limit", ""),
		IsStreaming:       getBool(payload, "is_live", ""),
		IsVerifiedChannel: boolOrFalse(getBool(payload, "channel_is_verified", "")),
		Language:          getString(payload, "language", ""),
		LikeCount:         getInt(payload, "like_count", ""),
		ShortURL:          ShortURL(idValue),
		Tags:              getStringList(payload, "tags"),
		Thumbnails:        thumbnailURLs(idValue),
		Title:             title,
		UploadTimestamp:   getInt(payload, "timestamp", "release_timestamp"),
		ViewCount:         getInt(payload, "view_count", ""),
	}

	return info, nil
}

// Dump renders the record as indented JSON. Output is byte-identical for
// identical inputs.
func (m MediaInfo) Dump() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildChapters(payload RawPayload) []Chapter {
	value, ok := lookup(payload, "chapters", "")
	if !ok {
		return []Chapter{}
	}
	items, ok := value.([]any)
	if !ok {
		return []Chapter{}
	}
	chapters := make([]Chapter, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		chapters = append(chapters, Chapter{
			Title:     getString(entry, "title", ""),
			StartTime: getFloat(entry, "start_time", ""),
			EndTime:   getFloat(entry, "end_time", ""),
		})
	}
	return chapters
}

func thumbnailURLs(id string) []string {
	urls := make([]string, 0, len(thumbnailVariants))
	for _, variant := range thumbnailVariants {
		urls = append(urls, "https://img.youtube.com/vi/"+id+"/"+variant+".jpg")
	}
	return urls
}

// cleanOf sanitizes a nullable string, mapping blank results back to nil.
func cleanOf(value *string) *string {
	if value == nil {
		return nil
	}
	return optString(FormatString(*value))
}

func boolOrFalse(value *bool) bool {
	return value != nil && *value
}

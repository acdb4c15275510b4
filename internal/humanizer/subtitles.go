package humanizer

import (
	"errors"
	"sort"
)

// SubtitleVariant is one downloadable rendition of a subtitle track.
type SubtitleVariant struct {
	Extension *string `json:"extension"`
	URL       *string `json:"url"`
	Language  *string `json:"language"`
}

// SubtitleCatalog maps a language/track label to its variants. JSON
// marshaling emits keys in sorted order, keeping dumps deterministic.
type SubtitleCatalog map[string][]SubtitleVariant

// Keys returns the track labels in canonical (sorted) order.
func (c SubtitleCatalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BuildSubtitleCatalog flattens the payload's raw subtitle map. A missing
// map is an empty catalog; a present map of the wrong shape is malformed
// input.
func BuildSubtitleCatalog(payload RawPayload) (SubtitleCatalog, error) {
	if payload == nil {
		return nil, WrapCategory(CategoryMalformed, errors.New("payload is not a map"))
	}

	value, ok := payload["subtitles"]
	if !ok || value == nil {
		return SubtitleCatalog{}, nil
	}
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, WrapCategory(CategoryMalformed, errors.New("subtitles is not a map"))
	}

	catalog := make(SubtitleCatalog, len(raw))
	for label, entry := range raw {
		variants := []SubtitleVariant{}
		if items, ok := entry.([]any); ok {
			for _, item := range items {
				variant, ok := item.(map[string]any)
				if !ok {
					continue
				}
				variants = append(variants, SubtitleVariant{
					Extension: getString(variant, "ext", ""),
					URL:       getString(variant, "url", ""),
					Language:  getString(variant, "name", ""),
				})
			}
		}
		catalog[label] = variants
	}
	return catalog, nil
}

package humanizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubtitleCatalog(t *testing.T) {
	payload := RawPayload{
		"subtitles": map[string]any{
			"pt": []any{
				map[string]any{"ext": "vtt", "url": "https://example.invalid/pt.vtt", "name": "Portuguese"},
			},
			"en": []any{
				map[string]any{"ext": "vtt", "url": "https://example.invalid/en.vtt", "name": "English"},
				map[string]any{"ext": "srv1", "url": "https://example.invalid/en.srv1", "name": "English"},
			},
		},
	}

	catalog, err := BuildSubtitleCatalog(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "pt"}, catalog.Keys())

	want := []SubtitleVariant{
		{Extension: strPtr("vtt"), URL: strPtr("https://example.invalid/en.vtt"), Language: strPtr("English")},
		{Extension: strPtr("srv1"), URL: strPtr("https://example.invalid/en.srv1"), Language: strPtr("English")},
	}
	if diff := cmp.Diff(want, catalog["en"]); diff != "" {
		t.Fatalf("unexpected variants (-want +got):\n%s", diff)
	}
}

func TestBuildSubtitleCatalogMissing(t *testing.T) {
	catalog, err := BuildSubtitleCatalog(RawPayload{"id": "x"})
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestBuildSubtitleCatalogMalformed(t *testing.T) {
	_, err := BuildSubtitleCatalog(RawPayload{"subtitles": []any{"wrong shape"}})
	require.Error(t, err)
	assert.Equal(t, CategoryMalformed, ErrorCategory(err))

	_, err = BuildSubtitleCatalog(nil)
	require.Error(t, err)
	assert.Equal(t, CategoryMalformed, ErrorCategory(err))
}

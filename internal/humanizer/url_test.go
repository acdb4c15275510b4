package humanizer

import "testing"

func TestExtractMediaID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://youtu.be/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/live/dQw4w9WgXcQ?si=x", "dQw4w9WgXcQ"},
		{"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"HTTPS://YOUTU.BE/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		got, err := ExtractMediaID(tc.url)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.url, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.url, tc.want, got)
		}
	}
}

func TestExtractMediaIDInvalid(t *testing.T) {
	invalid := []string{
		"",
		"not a url",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/short",
	}
	for _, url := range invalid {
		if _, err := ExtractMediaID(url); err == nil {
			t.Fatalf("%q: expected error", url)
		} else if ErrorCategory(err) != CategoryInvalidURL {
			t.Fatalf("%q: expected invalid_url category, got %q", url, ErrorCategory(err))
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	id := "PLFgquLnL59alCl_2TQvOiD5Vgm1hCaGSI"
	cases := []string{
		"https://www.youtube.com/playlist?list=" + id,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=" + id,
		"https://youtu.be/dQw4w9WgXcQ?list=" + id,
	}
	for _, url := range cases {
		got, err := ExtractPlaylistID(url)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", url, err)
		}
		if got != id {
			t.Fatalf("%s: expected %q, got %q", url, id, got)
		}
	}

	if _, err := ExtractPlaylistID("https://www.youtube.com/watch?v=dQw4w9WgXcQ"); err == nil {
		t.Fatalf("expected error for URL without playlist id")
	}
}

func TestDerivedURLs(t *testing.T) {
	id := "dQw4w9WgXcQ"
	if got := WatchURL(id); got != "https://www.youtube.com/watch?v="+id {
		t.Fatalf("unexpected watch url %q", got)
	}
	if got := ShortURL(id); got != "https://youtu.be/"+id {
		t.Fatalf("unexpected short url %q", got)
	}
	if got := EmbedURL(id); got != "https://www.youtube.com/embed/"+id {
		t.Fatalf("unexpected embed url %q", got)
	}
}

package humanizer

import "testing"

func TestLookupFallback(t *testing.T) {
	data := RawPayload{"title": "fallback title", "nil_key": nil}

	if got := getString(data, "fulltitle", "title"); got == nil || *got != "fallback title" {
		t.Fatalf("expected fallback key to resolve, got %v", got)
	}
	if got := getString(data, "missing", ""); got != nil {
		t.Fatalf("expected nil for missing key, got %q", *got)
	}
	// Explicit null behaves like an absent key.
	if got := getString(data, "nil_key", ""); got != nil {
		t.Fatalf("expected nil for null value, got %q", *got)
	}
}

func TestCoercionFailureDegradesToDefault(t *testing.T) {
	data := RawPayload{"duration": "not a number", "view_count": []any{}}

	if got := getFloat(data, "duration", ""); got != nil {
		t.Fatalf("expected nil for uncoercible value, got %v", *got)
	}
	if got := getInt(data, "view_count", ""); got != nil {
		t.Fatalf("expected nil for uncoercible value, got %v", *got)
	}
}

func TestNumericCoercion(t *testing.T) {
	data := RawPayload{"a": 42, "b": int64(7), "c": 2.5, "d": "3.5"}

	for key, want := range map[string]float64{"a": 42, "b": 7, "c": 2.5, "d": 3.5} {
		got := getFloat(data, key, "")
		if got == nil || *got != want {
			t.Fatalf("key %s: expected %v, got %v", key, want, got)
		}
	}
}

func TestBoolTruthiness(t *testing.T) {
	data := RawPayload{"age_limit": 18, "zero": 0, "flag": true, "text": "x", "empty": ""}

	cases := map[string]bool{"age_limit": true, "zero": false, "flag": true, "text": true, "empty": false}
	for key, want := range cases {
		got := getBool(data, key, "")
		if got == nil || *got != want {
			t.Fatalf("key %s: expected %v, got %v", key, want, got)
		}
	}
}

func TestStringListSkipsNonStrings(t *testing.T) {
	data := RawPayload{"tags": []any{"music", 3, "live"}}
	got := getStringList(data, "tags")
	if len(got) != 2 || got[0] != "music" || got[1] != "live" {
		t.Fatalf("unexpected list %v", got)
	}
	if got := getStringList(data, "categories"); len(got) != 0 {
		t.Fatalf("expected empty default, got %v", got)
	}
}

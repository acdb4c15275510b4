package humanizer

import "strconv"

// RawPayload is the raw metadata tree the Fetcher returns for one media
// item. Keys may be absent and values may be loosely typed; the engine only
// reads it and resolves every optional field through a default chain.
type RawPayload = map[string]any

// lookup returns data[key], trying fallback when the primary key is absent
// or nil. An empty fallback disables the second attempt.
func lookup(data RawPayload, key, fallback string) (any, bool) {
	if data == nil {
		return nil, false
	}
	if value, ok := data[key]; ok && value != nil {
		return value, true
	}
	if fallback == "" {
		return nil, false
	}
	if value, ok := data[fallback]; ok && value != nil {
		return value, true
	}
	return nil, false
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asBool mirrors loose truthiness: numbers are true when non-zero, strings
// when non-empty.
func asBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		return v != "", true
	default:
		if f, ok := asFloat(v); ok {
			return f != 0, true
		}
		return false, false
	}
}

// getString resolves a nullable string field; coercion failure degrades to
// nil like a missing key.
func getString(data RawPayload, key, fallback string) *string {
	value, ok := lookup(data, key, fallback)
	if !ok {
		return nil
	}
	s, ok := asString(value)
	if !ok {
		return nil
	}
	return &s
}

func getFloat(data RawPayload, key, fallback string) *float64 {
	value, ok := lookup(data, key, fallback)
	if !ok {
		return nil
	}
	f, ok := asFloat(value)
	if !ok {
		return nil
	}
	return &f
}

func getInt(data RawPayload, key, fallback string) *int64 {
	f := getFloat(data, key, fallback)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

func getIntSize(data RawPayload, key string) *int {
	f := getFloat(data, key, "")
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func getBool(data RawPayload, key, fallback string) *bool {
	value, ok := lookup(data, key, fallback)
	if !ok {
		return nil
	}
	b, ok := asBool(value)
	if !ok {
		return nil
	}
	return &b
}

// getStringList resolves a list-of-strings field; non-string elements are
// skipped, anything else degrades to the empty list.
func getStringList(data RawPayload, key string) []string {
	value, ok := lookup(data, key, "")
	if !ok {
		return []string{}
	}
	items, ok := value.([]any)
	if !ok {
		if typed, ok := value.([]string); ok {
			return append([]string{}, typed...)
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := asString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

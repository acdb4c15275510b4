package humanizer

import "errors"

// Category classifies an error for exit-code mapping and logging.
type Category string

const (
	// CategoryInvalidURL marks input that does not match any recognized
	// media or playlist identifier pattern.
	CategoryInvalidURL Category = "invalid_url"
	// CategoryMalformed marks a raw payload that violates a structural
	// assumption (e.g. formats is not a list). Individual missing fields
	// are never malformed input; they resolve through defaults.
	CategoryMalformed Category = "malformed_input"
	// CategoryNetwork marks transient or permanent fetch failures.
	CategoryNetwork Category = "network"
	// CategoryFilesystem marks local read/write failures.
	CategoryFilesystem Category = "filesystem"
	// CategoryTranscode marks ffmpeg re-encode or tagging failures.
	CategoryTranscode Category = "transcode"
	// CategoryUnsupported marks requests the pipeline cannot serve.
	CategoryUnsupported Category = "unsupported"
)

// CategorizedError carries a Category alongside the underlying error.
type CategorizedError struct {
	Category Category
	Err      error
}

func (e CategorizedError) Error() string {
	if e.Err == nil {
		return string(e.Category)
	}
	return e.Err.Error()
}

func (e CategorizedError) Unwrap() error { return e.Err }

// WrapCategory attaches a category to err. Already-categorized errors keep
// their original category.
func WrapCategory(category Category, err error) error {
	if err == nil {
		return nil
	}
	var categorized CategorizedError
	if errors.As(err, &categorized) {
		return err
	}
	return CategorizedError{Category: category, Err: err}
}

// ErrorCategory returns the category attached to err, or an empty category.
func ErrorCategory(err error) Category {
	var categorized CategorizedError
	if errors.As(err, &categorized) {
		return categorized.Category
	}
	return ""
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch ErrorCategory(err) {
	case CategoryInvalidURL:
		return 2
	case CategoryMalformed:
		return 3
	case CategoryUnsupported:
		return 4
	case CategoryNetwork:
		return 5
	case CategoryFilesystem:
		return 6
	case CategoryTranscode:
		return 7
	default:
		return 1
	}
}

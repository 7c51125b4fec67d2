package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// maxTitleBytes is the MediaWiki limit on the length of a page title.
const maxTitleBytes = 255

// illegalTitleChars are characters MediaWiki never accepts in a page title.
const illegalTitleChars = "#<>[]|{}"

// ValidateTitle validates an article title before it is sent to the API.
// It only rejects titles the API can never resolve; it does not normalize.
//
// Validation rules:
//   - No empty or whitespace-only titles
//   - Maximum length of 255 bytes
//   - No control characters
//   - None of the characters # < > [ ] | { }
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidTitle, "article title cannot be empty")
	}

	if len(title) > maxTitleBytes {
		return New(ErrCodeInvalidTitle, "article title too long (max %d bytes)", maxTitleBytes)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "article title contains invalid control characters")
		}
	}

	if i := strings.IndexAny(title, illegalTitleChars); i >= 0 {
		return New(ErrCodeInvalidTitle, "article title contains invalid character: %q", title[i])
	}

	return nil
}

// ValidateURL validates an API endpoint URL.
// It ensures the URL parses, uses http or https, and names a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL must include a host")
	}

	return nil
}

// ValidateLimit checks that a numeric option lies within [lo, hi].
func ValidateLimit(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidInput, "%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

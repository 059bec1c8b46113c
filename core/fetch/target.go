package fetch

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gaurav-prasanna/textkit/core"
)

// Sentinel errors for target validation.
var (
	ErrMissingURL = core.NewError(core.KindValidation, "Please enter a valid URL.")
	ErrInvalidURL = core.NewError(core.KindValidation, "Please enter a valid URL (it must include http:// or https:// and a host).")
	ErrNotAPage   = core.NewError(core.KindValidation, "The URL points to a file, not a webpage.")
)

// assetExtensions are file extensions that never hold an HTML page.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
}

// NormalizeTarget validates a user-supplied URL and strips its fragment.
// Scheme-less input such as "example.com/post" is read as https.
func NormalizeTarget(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	if IsAsset(parsed) {
		return "", fmt.Errorf("%w: %s", ErrNotAPage, raw)
	}

	parsed.Fragment = ""
	return parsed.String(), nil
}

// IsAsset reports whether u points to a static asset (image, CSS, JS, etc.).
func IsAsset(u *url.URL) bool {
	ext := strings.ToLower(path.Ext(u.Path))
	return assetExtensions[ext]
}

// relayURL builds the relay request URL carrying target as the "url"
// query parameter.
func relayURL(relay, target string) (string, error) {
	u, err := url.Parse(relay)
	if err != nil {
		return "", fmt.Errorf("parsing relay URL: %w", err)
	}
	q := u.Query()
	q.Set("url", target)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

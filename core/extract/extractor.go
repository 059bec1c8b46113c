// Package extract implements the Extractor interface.
// It isolates the readable main content of an HTML page by:
//  1. Returning the first match of an ordered list of content containers
//     (<article>, <main>, common CMS classes, role="main")
//  2. Falling back to <body> with noise elements (nav, footer, scripts,
//     sidebars, ads) removed
//
// This is a heuristic. Pages with uncommon markup produce noisy text.
package extract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/textkit/core"
)

// Sentinel errors for extraction.
var (
	ErrNoContent       = core.NewError(core.KindContent, "Could not find the main article content on the page.")
	ErrInvalidSelector = core.NewError(core.KindValidation, "Invalid content selector in configuration.")
)

// DefaultContentSelectors are tried in order; the first match wins.
var DefaultContentSelectors = []string{
	"article",
	"main",
	".post-content",
	".entry-content",
	`[role="main"]`,
	".td-post-content",
	".story-content",
}

// DefaultNoiseSelectors are removed from <body> before the fallback
// extraction. They contribute no meaningful content to the page text.
var DefaultNoiseSelectors = []string{
	"script", "style",
	"nav", "header", "footer", "aside",
	".sidebar", ".ad",
	`[role="navigation"]`, `[role="banner"]`, `[role="complementary"]`,
}

// Options overrides the selector lists. Nil slices use the defaults.
type Options struct {
	ContentSelectors []string
	NoiseSelectors   []string
}

// Page is the extracted main region of a document.
type Page struct {
	Title string
	Text  string // text content of the region
	HTML  string // outer HTML of the region
}

// HTMLExtractor finds the main content region of an HTML page.
type HTMLExtractor struct {
	content []string
	noise   []string
}

var _ core.Extractor = (*HTMLExtractor)(nil)

// New creates an HTMLExtractor with the default selector lists.
func New() *HTMLExtractor {
	e, err := NewWithOptions(Options{})
	if err != nil {
		// The defaults are constant and always compile.
		panic(err)
	}
	return e
}

// NewWithOptions compiles the configured selectors. An unparsable selector
// fails with ErrInvalidSelector.
func NewWithOptions(opts Options) (*HTMLExtractor, error) {
	contentSels := opts.ContentSelectors
	if contentSels == nil {
		contentSels = DefaultContentSelectors
	}
	noiseSels := opts.NoiseSelectors
	if noiseSels == nil {
		noiseSels = DefaultNoiseSelectors
	}

	if err := validate(contentSels); err != nil {
		return nil, err
	}
	if err := validate(noiseSels); err != nil {
		return nil, err
	}
	return &HTMLExtractor{
		content: slices.Clone(contentSels),
		noise:   slices.Clone(noiseSels),
	}, nil
}

// validate parses every selector up front; goquery silently matches
// nothing for a selector it cannot compile.
func validate(sels []string) error {
	for _, s := range sels {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidSelector, s, err)
		}
	}
	return nil
}

// Extract returns the text content of the main region of html.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	page, err := e.ExtractPage(html)
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

// ExtractPage parses html and returns its title and main region.
func (e *HTMLExtractor) ExtractPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	region := e.mainRegion(doc)
	text := region.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}

	fragment, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}

	return &Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  text,
		HTML:  fragment,
	}, nil
}

// mainRegion returns the first content container match, or the cleaned
// body when none matches.
func (e *HTMLExtractor) mainRegion(doc *goquery.Document) *goquery.Selection {
	for _, s := range e.content {
		if sel := doc.Find(s); sel.Length() > 0 {
			return sel.First()
		}
	}

	body := doc.Find("body").First()
	for _, s := range e.noise {
		body.Find(s).Remove()
	}
	return body
}

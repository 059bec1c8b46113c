package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/textkit/core"
)

func TestFetch_PassesTargetToRelay(t *testing.T) {
	var gotTarget, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.URL.Query().Get("url")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><article>Hi</article></body></html>"))
	}))
	defer srv.Close()

	f := NewWithOptions(Options{RelayURL: srv.URL + "/raw"})
	res, err := f.Fetch(context.Background(), "https://example.com/post?id=7&x=y#comments")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/post?id=7&x=y", gotTarget)
	assert.Equal(t, defaultUserAgent, gotUA)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "https://example.com/post?id=7&x=y", res.URL)
	assert.Contains(t, res.HTML, "<article>Hi</article>")
}

func TestFetch_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewWithOptions(Options{RelayURL: srv.URL}).Fetch(context.Background(), "https://example.com")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, core.KindNetwork, core.Classify(err))
	assert.Equal(t, "Failed to fetch the URL. Status: 403", core.UserMessage(err))
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	relay := srv.URL
	srv.Close()

	_, err := NewWithOptions(Options{RelayURL: relay}).Fetch(context.Background(), "https://example.com")
	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, core.KindNetwork, core.Classify(err))
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewWithOptions(Options{RelayURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := f.Fetch(context.Background(), "https://example.com")
	require.ErrorIs(t, err, ErrTransport)
}

func TestFetch_DecodesCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "café" in Latin-1
		_, _ = w.Write([]byte{'<', 'p', '>', 'c', 'a', 'f', 0xE9, '<', '/', 'p', '>'})
	}))
	defer srv.Close()

	res, err := NewWithOptions(Options{RelayURL: srv.URL}).Fetch(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", res.HTML)
}

func TestFetch_ValidatesBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	_, err := NewWithOptions(Options{RelayURL: srv.URL}).Fetch(context.Background(), "   ")
	require.ErrorIs(t, err, ErrMissingURL)
	assert.False(t, called)
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "https", input: "https://example.com/a", expected: "https://example.com/a"},
		{name: "strips fragment", input: "http://example.com/a#top", expected: "http://example.com/a"},
		{name: "adds scheme", input: "example.com/post", expected: "https://example.com/post"},
		{name: "trims spaces", input: "  https://example.com  ", expected: "https://example.com"},
		{name: "empty", input: "", err: ErrMissingURL},
		{name: "blank", input: " \t ", err: ErrMissingURL},
		{name: "ftp scheme", input: "ftp://example.com/file", err: ErrInvalidURL},
		{name: "no host", input: "https://", err: ErrInvalidURL},
		{name: "image asset", input: "https://example.com/logo.PNG", err: ErrNotAPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTarget(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, core.KindValidation, core.Classify(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRelayURL_KeepsExistingQuery(t *testing.T) {
	got, err := relayURL("https://relay.example/get?format=raw", "https://example.com/?q=a b")
	require.NoError(t, err)
	assert.Equal(t, "https://relay.example/get?format=raw&url=https%3A%2F%2Fexample.com%2F%3Fq%3Da+b", got)
}

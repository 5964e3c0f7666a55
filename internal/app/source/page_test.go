package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractMediaURL(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "og_audio",
			html: `<html><head><meta property="og:audio" content="https://cdn.example.com/ep1.mp3"/></head></html>`,
			want: "https://cdn.example.com/ep1.mp3",
		},
		{
			name: "og_audio_preferred_over_video",
			html: `<html><head>
				<meta property="og:video" content="https://cdn.example.com/ep1.mp4"/>
				<meta property="og:audio" content="https://cdn.example.com/ep1.mp3"/>
			</head></html>`,
			want: "https://cdn.example.com/ep1.mp3",
		},
		{
			name: "og_video_fallback",
			html: `<html><head><meta property="og:video" content="https://cdn.example.com/clip.mp4"/></head></html>`,
			want: "https://cdn.example.com/clip.mp4",
		},
		{
			name: "audio_source_element",
			html: `<html><body><audio><source src="/media/ep2.ogg"/></audio></body></html>`,
			want: "/media/ep2.ogg",
		},
		{
			name: "audio_src_attribute",
			html: `<html><body><audio src="ep3.mp3"></audio></body></html>`,
			want: "ep3.mp3",
		},
		{
			name: "nothing_found",
			html: `<html><body><p>just text</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMediaURL(docFromHTML(t, tt.html)))
		})
	}
}

func TestPageExtractorFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/episode", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:audio" content="/media/ep.mp3"/></head></html>`)
	})
	mux.HandleFunc("/media/ep.mp3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3-payload"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	destDir := t.TempDir()
	extractor := NewPageExtractor()

	path, err := extractor.Fetch(context.Background(), srv.URL+"/episode", destDir)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".mp3"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mp3-payload", string(data))
}

func TestPageExtractorFetchNoMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>nothing here</body></html>`)
	}))
	defer srv.Close()

	extractor := NewPageExtractor()
	_, err := extractor.Fetch(context.Background(), srv.URL, t.TempDir())

	require.Error(t, err)
	var dlErr *DownloadError
	assert.ErrorAs(t, err, &dlErr)
}

func TestPageExtractorFetchPageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	extractor := NewPageExtractor()
	_, err := extractor.Fetch(context.Background(), srv.URL, t.TempDir())
	assert.Error(t, err)
}

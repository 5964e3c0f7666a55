package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/zpeteman/content-repurposer/internal/app/audio"
)

// PageExtractor handles URLs that are not a known video site: it fetches the
// page, looks for an og:audio / og:video reference and downloads the media
// file directly.
type PageExtractor struct {
	client *http.Client
}

// NewPageExtractor creates a PageExtractor with a bounded HTTP client.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Fetch resolves the media URL embedded in pageURL and downloads it into
// destDir, returning the local path.
func (p *PageExtractor) Fetch(ctx context.Context, pageURL string, destDir string) (string, error) {
	mediaURL, err := p.resolveMediaURL(ctx, pageURL)
	if err != nil {
		return "", &DownloadError{URL: pageURL, Err: err}
	}

	ext := mediaExtension(mediaURL)
	if ext == "" {
		ext = ".mp3"
	}
	localPath := filepath.Join(destDir, NewArtifactName()+ext)

	if err := p.downloadFile(ctx, mediaURL, localPath); err != nil {
		return "", &DownloadError{URL: pageURL, Err: err}
	}

	// Pages sometimes point at video files; normalize those to MP3.
	if !audio.IsAudioFile(localPath) {
		mp3Path := strings.TrimSuffix(localPath, filepath.Ext(localPath)) + ".mp3"
		if err := audio.ConvertToMP3(localPath, mp3Path); err != nil {
			os.Remove(localPath)
			return "", &DownloadError{URL: pageURL, Err: err}
		}
		os.Remove(localPath)
		localPath = mp3Path
	}

	return localPath, nil
}

func (p *PageExtractor) resolveMediaURL(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	mediaURL := ExtractMediaURL(doc)
	if mediaURL == "" {
		return "", fmt.Errorf("no og:audio, og:video or <audio> source found")
	}

	return resolveRelative(pageURL, mediaURL)
}

// ExtractMediaURL finds the first usable media reference in a document.
func ExtractMediaURL(doc *goquery.Document) string {
	selectors := []string{
		`meta[property="og:audio"]`,
		`meta[property="og:audio:url"]`,
		`meta[property="og:video"]`,
		`meta[property="og:video:url"]`,
	}

	for _, sel := range selectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && content != "" {
			return content
		}
	}

	if src, ok := doc.Find("audio source").First().Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := doc.Find("audio").First().Attr("src"); ok && src != "" {
		return src
	}

	return ""
}

func resolveRelative(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

var mediaExtensions = []string{".mp3", ".m4a", ".wav", ".ogg", ".flac", ".mp4", ".webm"}

func mediaExtension(mediaURL string) string {
	u, err := url.Parse(mediaURL)
	if err != nil {
		return ""
	}
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(strings.ToLower(u.Path), ext) {
			return ext
		}
	}
	return ""
}

func (p *PageExtractor) downloadFile(ctx context.Context, mediaURL string, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("media returned HTTP %d", resp.StatusCode)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(localPath)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}

	success = true
	return nil
}

package dataset

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/client"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
)

// Supported dataset formats
const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatHTML   = "html"
	FormatSQLite = "sqlite"
)

// IsValidFormat checks if the format is supported
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatAuto, FormatCSV, FormatHTML, FormatSQLite, "":
		return true
	}
	return false
}

// IsRemote reports whether path is an http(s) URL
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// DetectFormat picks a format from the file extension of path, defaulting to csv
func DetectFormat(path string) string {
	if IsRemote(path) {
		if u, err := url.Parse(path); err == nil {
			path = u.Path
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// formatFromContentType refines an undetected remote format using the response type
func formatFromContentType(path, contentType string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" && strings.Contains(strings.ToLower(contentType), "html") {
		return FormatHTML
	}
	return DetectFormat(path)
}

// Open reads job records from a local file or an http(s) URL.
// httpClient is only used for remote datasets and may be nil otherwise.
func Open(ctx context.Context, path, format string, opts Options, httpClient *http.Client) ([]models.JobRecord, error) {
	format = strings.ToLower(format)
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	if IsRemote(path) {
		return openRemote(ctx, path, format, opts, httpClient)
	}

	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	if format == FormatSQLite {
		return ReadSQLite(ctx, path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if format == FormatHTML {
		return ReadHTML(f, opts)
	}
	return ReadCSV(f, opts)
}

func openRemote(ctx context.Context, rawURL, format string, opts Options, httpClient *http.Client) ([]models.JobRecord, error) {
	if format == FormatSQLite {
		return nil, fmt.Errorf("sqlite datasets must be local files: %s", rawURL)
	}
	if httpClient == nil {
		var err error
		httpClient, err = client.CreateHTTPClient("", client.DefaultTimeout)
		if err != nil {
			return nil, err
		}
	}

	body, contentType, err := client.Fetch(ctx, httpClient, rawURL)
	if err != nil {
		return nil, err
	}

	if format == "" || format == FormatAuto {
		urlPath := rawURL
		if u, err := url.Parse(rawURL); err == nil {
			urlPath = u.Path
		}
		format = formatFromContentType(urlPath, contentType)
	}

	switch format {
	case FormatHTML:
		return ReadHTML(bytes.NewReader(body), opts)
	case FormatSQLite:
		return nil, fmt.Errorf("sqlite datasets must be local files: %s", rawURL)
	default:
		return ReadCSV(bytes.NewReader(body), opts)
	}
}

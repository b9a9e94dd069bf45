package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateHTTPClient(t *testing.T) {
	c, err := CreateHTTPClient("", 0)
	if err != nil {
		t.Fatalf("CreateHTTPClient() returned error: %v", err)
	}
	if c.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.Timeout, DefaultTimeout)
	}

	if _, err := CreateHTTPClient("http://localhost:8080", 0); err != nil {
		t.Errorf("CreateHTTPClient() with proxy returned error: %v", err)
	}

	if _, err := CreateHTTPClient("not a proxy", 0); err == nil {
		t.Error("expected error for invalid proxy URL")
	}
}

func TestFetchPlain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "salarypredictor") {
			t.Errorf("unexpected User-Agent %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("a,b\n1,2\n"))
	}))
	defer server.Close()

	c, _ := CreateHTTPClient("", 0)
	body, contentType, err := Fetch(context.Background(), c, server.URL+"/jobs.csv")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if string(body) != "a,b\n1,2\n" {
		t.Errorf("body = %q", body)
	}
	if contentType != "text/csv" {
		t.Errorf("content type = %q", contentType)
	}
}

func TestFetchGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("compressed body"))
	gz.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer server.Close()

	c, _ := CreateHTTPClient("", 0)
	body, _, err := Fetch(context.Background(), c, server.URL)
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if string(body) != "compressed body" {
		t.Errorf("body = %q, want decompressed text", body)
	}
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c, _ := CreateHTTPClient("", 0)
	if _, _, err := Fetch(context.Background(), c, server.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestReadResponseBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		body     []byte
		limit    int64
		want     string
		tooLarge bool
	}{
		{"plain within limit", "", []byte("abcdef"), 6, "abcdef", false},
		{"plain over limit", "", []byte("abcdefg"), 6, "", true},
		{"gzip limit applies to decoded size", "gzip", gzipBytes(t, "abcdefg"), 6, "", true},
		{"x-gzip is decoded", "x-gzip", gzipBytes(t, "abc"), 6, "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				Header: http.Header{},
				Body:   io.NopCloser(bytes.NewReader(tt.body)),
			}
			if tt.encoding != "" {
				resp.Header.Set("Content-Encoding", tt.encoding)
			}

			got, err := ReadResponseBody(resp, tt.limit)
			if tt.tooLarge {
				var tooLarge *BodyTooLargeError
				if !errors.As(err, &tooLarge) {
					t.Fatalf("error = %v, want *BodyTooLargeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadResponseBody() returned error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadResponseBodyUnsupportedEncoding(t *testing.T) {
	resp := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"br"}},
		Body:   io.NopCloser(strings.NewReader("data")),
	}
	if _, err := ReadResponseBody(resp, MaxDatasetBytes); err == nil {
		t.Error("expected error for brotli body")
	}
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

package imagehost

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClient(t *testing.T) {
	if _, err := NewHTTPClient(":://bad", "key", testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewHTTPClient("/relative", "key", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("https://api.imgbb.com/1/upload", "key", testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUploadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected api key in query, got %q", got)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("missing image part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "proof.png" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		payload, _ := io.ReadAll(file)
		if string(payload) != "image-bytes" {
			t.Errorf("unexpected payload %q", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"url":"https://i.ibb.co/abc/proof.png"},"success":true}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := client.Upload(context.Background(), "proof.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://i.ibb.co/abc/proof.png" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Upload(context.Background(), "proof.png", strings.NewReader("x")); !errors.Is(err, domainErrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

func TestUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "secret", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Upload(context.Background(), "proof.png", strings.NewReader("x")); !errors.Is(err, domainErrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

func TestUploadConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewHTTPClient(server.URL, "secret", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Upload(context.Background(), "proof.png", strings.NewReader("x")); !errors.Is(err, domainErrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

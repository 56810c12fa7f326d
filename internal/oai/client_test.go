package oai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCreateImage_PostsPayloadAndParsesURLForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/images/generations" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type: %q", got)
		}
		var req ImagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if req.Model != "gpt-image-1" || req.Prompt != "mossy wall" || req.N != 1 || req.Size != "1024x1024" || req.Quality != "medium" {
			t.Fatalf("unexpected payload: %+v", req)
		}
		if err := json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://cdn.example.com/img.png"}},
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1/", "sk-test", 5*time.Second)
	resp, err := c.CreateImage(context.Background(), ImagesRequest{
		Model: "gpt-image-1", Prompt: "mossy wall", N: 1, Size: "1024x1024", Quality: "medium",
	})
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].URL != "https://cdn.example.com/img.png" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateImage_OmitsAuthAndResponseFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("expected no auth header, got %q", got)
		}
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if _, ok := raw["response_format"]; ok {
			t.Fatalf("response_format must not be sent: %v", raw)
		}
		if err := json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"b64_json": "aGVsbG8="}},
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	resp, err := c.CreateImage(context.Background(), ImagesRequest{Model: "m", Prompt: "p", N: 1})
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if resp.Data[0].B64JSON != "aGVsbG8=" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateImage_SurfacesAPIErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"string error", `{"error":"billing hard limit reached"}`},
		{"object error", `{"error":{"message":"billing hard limit reached"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				if _, err := w.Write([]byte(tc.body)); err != nil {
					t.Fatalf("write: %v", err)
				}
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "sk-test", 5*time.Second)
			_, err := c.CreateImage(context.Background(), ImagesRequest{Model: "m", Prompt: "p", N: 1})
			if err == nil || err.Error() != "billing hard limit reached" {
				t.Fatalf("expected API message, got %v", err)
			}
		})
	}
}

func TestCreateImage_StatusOnlyErrorWhenBodyOpaque(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", 5*time.Second)
	_, err := c.CreateImage(context.Background(), ImagesRequest{Model: "m", Prompt: "p", N: 1})
	if err == nil || !strings.Contains(err.Error(), "api status 502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestDownload_ReturnsBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if _, err := w.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	data, err := c.Download(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected bytes: %q", data)
	}
}

func TestDownload_NonOKIncludesTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte("gone")); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	_, err := c.Download(context.Background(), srv.URL+"/img.png")
	if err == nil || !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "gone") {
		t.Fatalf("expected 404 error with body, got %v", err)
	}
}

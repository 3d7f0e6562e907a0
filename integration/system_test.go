//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E_Storefront(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var categories []map[string]any
	getJSON(t, baseURL+"/api/categories", &categories, 200)
	if len(categories) == 0 {
		t.Fatalf("expected non-empty categories")
	}

	var products []map[string]any
	getJSON(t, baseURL+"/api/products?featured=true&limit=4", &products, 200)
	if len(products) == 0 || len(products) > 4 {
		t.Fatalf("expected 1..4 featured products, got %d", len(products))
	}

	slug, _ := products[0]["slug"].(string)
	if slug == "" {
		t.Fatalf("product slug missing in response: %#v", products[0])
	}

	var product map[string]any
	getJSON(t, baseURL+"/api/product/"+slug, &product, 200)
	if product["slug"] != slug {
		t.Fatalf("slug mismatch: %#v", product)
	}

	var missing map[string]any
	getJSON(t, baseURL+"/api/product/khong-ton-tai", &missing, 404)
	if msg, _ := missing["message"].(string); msg == "" {
		t.Fatalf("404 body missing message: %#v", missing)
	}

	var hits []map[string]any
	getJSON(t, baseURL+"/api/search?q=premium", &hits, 200)
	if len(hits) == 0 {
		t.Fatalf("expected search hits for 'premium'")
	}

	var posts []map[string]any
	getJSON(t, baseURL+"/api/blog?limit=2", &posts, 200)
	if len(posts) == 0 || len(posts) > 2 {
		t.Fatalf("expected 1..2 blog posts, got %d", len(posts))
	}

	if os.Getenv("E2E_RESTART_STOREFRONT") == "1" {
		restartStorefrontContainer(t, ctx)
		waitReady(t, ctx, baseURL+"/readyz")
		getJSON(t, baseURL+"/api/product/"+slug, &product, 200)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getJSON(t *testing.T, url string, out any, want int) {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	if resp.StatusCode != want {
		t.Fatalf("GET %s: status=%d want=%d body=%s", url, resp.StatusCode, want, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode response: %v body=%s", err, raw)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var shopURL = getenv("E2E_SHOP_URL", "http://localhost:8081")

func TestShop_E2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, shopURL+"/readyz")

	sku := fmt.Sprintf("E2E-%d", time.Now().UnixNano())

	var product map[string]any
	doJSON(t, http.MethodPost, shopURL+"/products", map[string]any{
		"sku": sku, "name": "E2E Widget", "price": 9.99, "stock": 10,
	}, &product, http.StatusCreated)

	pid, ok := product["id"].(float64)
	if !ok {
		t.Fatalf("product id missing: %#v", product)
	}

	var order map[string]any
	doJSON(t, http.MethodPost, shopURL+"/orders", map[string]any{
		"product_id": int64(pid), "quantity": 3,
	}, &order, http.StatusCreated)

	oid, ok := order["id"].(float64)
	if !ok {
		t.Fatalf("order id missing: %#v", order)
	}

	var after map[string]any
	doJSON(t, http.MethodGet, fmt.Sprintf("%s/products/%d", shopURL, int64(pid)), nil, &after, http.StatusOK)
	if after["stock"].(float64) != 7 {
		t.Fatalf("expected stock 7 after order, got %v", after["stock"])
	}

	doJSON(t, http.MethodDelete, fmt.Sprintf("%s/orders/%d", shopURL, int64(oid)), nil, nil, http.StatusNoContent)

	doJSON(t, http.MethodGet, fmt.Sprintf("%s/products/%d", shopURL, int64(pid)), nil, &after, http.StatusOK)
	if after["stock"].(float64) != 10 {
		t.Fatalf("expected stock restored to 10, got %v", after["stock"])
	}

	doJSON(t, http.MethodDelete, fmt.Sprintf("%s/products/%d", shopURL, int64(pid)), nil, nil, http.StatusNoContent)
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("service never became ready: %s", url)
		default:
		}

		resp, err := http.Get(url)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func doJSON(t *testing.T, method, url string, body, out any, wantStatus int) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, url, wantStatus, resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package billbee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
}

func TestOrdersForDate_FolgtDerPaginierungBisZumEnde(t *testing.T) {
	var seenPages []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		seenPages = append(seenPages, page)
		fmt.Fprintf(w, `{
			"Data": [{"Id": %d, "CreatedAt": "2024-05-03T10:00:00", "Platform": "Shop", "ShippingCountry": "DE", "OrderItems": []}],
			"Paging": {"Page": %d, "TotalPages": 3, "TotalRows": 3}
		}`, page, page)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", Username: "u", Password: "p", BaseURL: srv.URL})
	orders, err := c.OrdersForDate(context.Background(), testDate())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, seenPages, "alle Seiten des Tages werden geholt")
	require.Len(t, orders, 3)
	assert.Equal(t, json.Number("1"), orders[0].ID)
}

func TestOrdersForDate_SetztAuthUndTagesgrenzen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-Billbee-Api-Key"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok, "Basic Auth zusätzlich zum API-Key")
		assert.Equal(t, "u", user)
		assert.Equal(t, "p", pass)

		q := r.URL.Query()
		assert.Equal(t, "2024-05-03T00:00:00", q.Get("minOrderDate"))
		assert.Equal(t, "2024-05-03T23:59:59", q.Get("maxOrderDate"))

		fmt.Fprint(w, `{"Data": [], "Paging": {"Page": 1, "TotalPages": 1}}`)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", Username: "u", Password: "p", BaseURL: srv.URL})
	orders, err := c.OrdersForDate(context.Background(), testDate())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrdersForDate_HTTPFehlerBrichtDenTagAb(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	_, err := c.OrdersForDate(context.Background(), testDate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestOrdersForDate_RateLimitIstEinEigenerFehler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	_, err := c.OrdersForDate(context.Background(), testDate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestOrdersForDate_OhneAPIKey(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.OrdersForDate(context.Background(), testDate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BILLBEE_API_KEY")
}

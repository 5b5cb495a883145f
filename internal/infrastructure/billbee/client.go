package billbee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avelio/profitab-api/internal/domain/entity"
	"github.com/avelio/profitab-api/internal/domain/repository"
)

// Compile-Zeit-Prüfung: Client implementiert den OrderSource-Port.
var _ repository.OrderSource = (*Client)(nil)

const (
	defaultBaseURL = "https://app.billbee.io/api/v1"
	pageSize       = 250
)

// Config Zugangsdaten der Billbee-API: API-Key als Header plus Basic Auth mit
// Benutzer und API-Passwort.
type Config struct {
	APIKey   string
	Username string
	Password string
	BaseURL  string // leer = Produktions-API
}

// Client Adapter zur Billbee-Order-API über net/http. Die Paginierung eines
// Tages wird intern bis zum Ende verfolgt; wiederholt wird hier nichts.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient baut den Billbee-Client. Fehlende Zugangsdaten führen zu einem
// beschreibenden Fehler beim ersten Aufruf, nicht zu einem Panic.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ── Wire-Strukturen der Billbee-API ───────────────────────────────────────────

type ordersResponse struct {
	Data   []entity.RawOrder `json:"Data"`
	Paging struct {
		Page       int `json:"Page"`
		TotalPages int `json:"TotalPages"`
		TotalRows  int `json:"TotalRows"`
	} `json:"Paging"`
	ErrorMessage string `json:"ErrorMessage"`
}

// ── Implementierung des Ports ─────────────────────────────────────────────────

// OrdersForDate liefert alle Rohbestellungen eines Kalendertages, über alle
// Seiten hinweg. Ein Transportfehler auf irgendeiner Seite bricht den ganzen
// Tag ab; der Aufrufer behandelt den Tag dann als fehlgeschlagen.
func (c *Client) OrdersForDate(ctx context.Context, date time.Time) ([]entity.RawOrder, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("billbee: BILLBEE_API_KEY nicht konfiguriert")
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	var orders []entity.RawOrder
	for page := 1; ; page++ {
		resp, err := c.fetchPage(ctx, dayStart, dayEnd, page)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp.Data...)
		if page >= resp.Paging.TotalPages {
			break
		}
	}
	return orders, nil
}

func (c *Client) fetchPage(ctx context.Context, from, to time.Time, page int) (*ordersResponse, error) {
	q := url.Values{}
	q.Set("minOrderDate", from.Format("2006-01-02T15:04:05"))
	q.Set("maxOrderDate", to.Format("2006-01-02T15:04:05"))
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/orders?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("billbee: request bauen: %w", err)
	}
	req.Header.Set("X-Billbee-Api-Key", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("billbee: abgebrochen: %w", ctx.Err())
		}
		return nil, fmt.Errorf("billbee: HTTP-Aufruf fehlgeschlagen: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("billbee: antwort lesen: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("billbee: rate limit erreicht (HTTP 429)")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("billbee: HTTP %d: %s", resp.StatusCode, truncate(rawBody, 512))
	}

	var out ordersResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return nil, fmt.Errorf("billbee: antwort deserialisieren: %w", err)
	}
	if out.ErrorMessage != "" {
		return nil, fmt.Errorf("billbee: API-Fehler: %s", out.ErrorMessage)
	}
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}

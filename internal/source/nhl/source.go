package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gdtbot/internal/domain"
)

const SourceName = "nhl-statsapi"

// Config holds feed client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches and normalizes the NHL stats feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a feed client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", SourceName),
	}
}

// Schedule fetches the schedule between two inclusive dates ("YYYY-MM-DD")
// and returns skeleton games. Records that cannot be normalized are logged
// and dropped; a transport or decode failure fails the whole call.
func (c *Client) Schedule(ctx context.Context, startDate, endDate string) ([]domain.Game, error) {
	url := fmt.Sprintf("%s/schedule?startDate=%s&endDate=%s", c.baseURL, startDate, endDate)
	raw, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	var games []domain.Game
	for _, date := range getSlice(raw, "dates") {
		for _, entry := range getSlice(date, "games") {
			game := parseScheduledGame(entry)
			if game == nil {
				id, _ := getInt64(entry, "gamePk")
				c.logger.Warn("skipping malformed scheduled game", "game_pk", id)
				continue
			}
			games = append(games, *game)
		}
	}
	return games, nil
}

// Game fetches the live feed for one game and returns the detailed Game.
func (c *Client) Game(ctx context.Context, gameID int64) (*domain.Game, error) {
	url := fmt.Sprintf("%s/game/%d/feed/live", c.baseURL, gameID)
	raw, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch live feed for game %d: %w", gameID, err)
	}

	game := parseLiveFeed(raw)
	if game == nil {
		return nil, fmt.Errorf("malformed live feed for game %d", gameID)
	}
	return game, nil
}

func (c *Client) fetch(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gdtbot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return raw, nil
}

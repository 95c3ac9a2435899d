// Package sleeper reads players, trending adds and league data from the Sleeper API.
package sleeper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/domain/players"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/providers"
)

// Config controls how the client reaches Sleeper.
type Config struct {
	BaseURL    string
	HTTPClient providers.Doer
	Retry      providers.RetryOptions
	Logger     *slog.Logger
}

// Client implements providers.SleeperProvider.
type Client struct {
	baseURL    string
	httpClient providers.Doer
	retry      providers.RetryOptions
	logger     *slog.Logger
}

var _ providers.SleeperProvider = (*Client)(nil)

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	retry := cfg.Retry
	retry.Provider = ProviderName
	if retry.Logger == nil {
		retry.Logger = cfg.Logger
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		retry:      retry,
		logger:     cfg.Logger,
	}
}

// FetchPlayers returns the full NBA player directory.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var raw map[string]*playerResponse
	if err := c.getJSON(ctx, "/players/"+sport, nil, &raw); err != nil {
		return nil, err
	}
	out := mapPlayers(raw)
	logging.Info(c.logger, "fetched players", logging.FieldProvider, ProviderName, logging.FieldCount, len(out))
	return out, nil
}

// FetchTrending returns the most-added players over the lookback window.
func (c *Client) FetchTrending(ctx context.Context, lookbackHours, limit int) ([]trending.Entry, error) {
	q := url.Values{}
	q.Set("lookback_hours", strconv.Itoa(lookbackHours))
	q.Set("limit", strconv.Itoa(limit))

	var raw []trendingResponse
	if err := c.getJSON(ctx, "/players/"+sport+"/trending/add", q, &raw); err != nil {
		return nil, err
	}
	return mapTrending(raw)
}

// FetchUser looks up a member by username. Unknown users yield providers.ErrNotFound.
func (c *Client) FetchUser(ctx context.Context, username string) (league.Member, error) {
	var raw *userResponse
	if err := c.getJSON(ctx, "/user/"+url.PathEscape(username), nil, &raw); err != nil {
		return league.Member{}, err
	}
	if raw == nil {
		return league.Member{}, fmt.Errorf("sleeper user %q: %w", username, providers.ErrNotFound)
	}
	return mapMember(*raw)
}

// FetchLeagueUsers returns every member of a league.
func (c *Client) FetchLeagueUsers(ctx context.Context, leagueID string) ([]league.Member, error) {
	var raw []userResponse
	if err := c.getJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/users", nil, &raw); err != nil {
		return nil, err
	}
	return mapMembers(raw)
}

// FetchRosters returns every roster in a league.
func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	var raw []rosterResponse
	if err := c.getJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters", nil, &raw); err != nil {
		return nil, err
	}
	return mapRosters(raw)
}

// FetchDraftPicks returns every pick made in a draft.
func (c *Client) FetchDraftPicks(ctx context.Context, draftID string) ([]league.DraftPick, error) {
	var raw []draftPickResponse
	if err := c.getJSON(ctx, "/draft/"+url.PathEscape(draftID)+"/picks", nil, &raw); err != nil {
		return nil, err
	}
	return mapDraftPicks(raw)
}

// FetchMatchups returns both sides of every matchup for a week.
func (c *Client) FetchMatchups(ctx context.Context, leagueID string, week int) ([]league.Matchup, error) {
	var raw []matchupResponse
	path := "/league/" + url.PathEscape(leagueID) + "/matchups/" + strconv.Itoa(week)
	if err := c.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	return mapMatchups(raw)
}

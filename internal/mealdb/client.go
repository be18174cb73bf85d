package mealdb

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/pageza/recipe-analyzer/backend/internal/errors"
	"github.com/pageza/recipe-analyzer/backend/internal/model"
	"github.com/pageza/recipe-analyzer/backend/internal/observability"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Freshness hints callers pass to the accessors.
const (
	// TTLMeals applies to recipe lookups, searches and filtered listings.
	TTLMeals = time.Hour
	// TTLListings applies to the category and area name listings.
	TTLListings = 24 * time.Hour
)

// Upstream resource names used in errors and metrics.
const (
	ResourceMeals      = "meals"
	ResourceMeal       = "meal"
	ResourceCategories = "categories"
	ResourceAreas      = "areas"
)

// Client is the read-only gateway to the upstream recipe API. Every
// accessor issues exactly one GET through the Fetcher.
type Client struct {
	fetcher Fetcher
	baseURL string
}

// New returns a client for baseURL (DefaultBaseURL when empty).
func New(fetcher Fetcher, baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// BaseURL returns the upstream root the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type listResponse[T any] struct {
	Meals []T `json:"meals"`
}

type categoryName struct {
	Name string `json:"strCategory"`
}

type areaName struct {
	Name string `json:"strArea"`
}

// FetchByFirstLetter lists meals whose name starts with letter. The letter
// is passed through unvalidated.
func (c *Client) FetchByFirstLetter(ctx context.Context, letter string, ttl time.Duration) ([]model.Meal, error) {
	return fetchList[model.Meal](ctx, c, ResourceMeals, c.endpoint("search.php", "f", letter), ttl)
}

// FetchByID looks a meal up by id. It returns nil, nil when there is no match.
func (c *Client) FetchByID(ctx context.Context, id string, ttl time.Duration) (*model.Meal, error) {
	meals, err := fetchList[model.Meal](ctx, c, ResourceMeal, c.endpoint("lookup.php", "i", id), ttl)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

// FetchCategories lists category names.
func (c *Client) FetchCategories(ctx context.Context, ttl time.Duration) ([]string, error) {
	records, err := fetchList[categoryName](ctx, c, ResourceCategories, c.endpoint("list.php", "c", "list"), ttl)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names, nil
}

// FetchAreas lists area (cuisine) names.
func (c *Client) FetchAreas(ctx context.Context, ttl time.Duration) ([]string, error) {
	records, err := fetchList[areaName](ctx, c, ResourceAreas, c.endpoint("list.php", "a", "list"), ttl)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names, nil
}

// FetchByCategory lists the meals in a category.
func (c *Client) FetchByCategory(ctx context.Context, category string, ttl time.Duration) ([]model.Meal, error) {
	return fetchList[model.Meal](ctx, c, ResourceMeals, c.endpoint("filter.php", "c", category), ttl)
}

// FetchByArea lists the meals of an area.
func (c *Client) FetchByArea(ctx context.Context, area string, ttl time.Duration) ([]model.Meal, error) {
	return fetchList[model.Meal](ctx, c, ResourceMeals, c.endpoint("filter.php", "a", area), ttl)
}

// SearchByName runs the upstream free-text name search.
func (c *Client) SearchByName(ctx context.Context, query string, ttl time.Duration) ([]model.Meal, error) {
	return fetchList[model.Meal](ctx, c, ResourceMeals, c.endpoint("search.php", "s", query), ttl)
}

// SearchRaw runs the name search and returns the upstream JSON untouched.
func (c *Client) SearchRaw(ctx context.Context, query string, ttl time.Duration) (json.RawMessage, error) {
	body, err := c.get(ctx, ResourceMeals, c.endpoint("search.php", "s", query), ttl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream, "failed to decode "+ResourceMeals,
			stderrors.New("invalid JSON"), map[string]any{"resource": ResourceMeals})
	}
	return json.RawMessage(body), nil
}

func (c *Client) endpoint(path, key, value string) string {
	return c.baseURL + "/" + path + "?" + url.Values{key: []string{value}}.Encode()
}

// get fetches one upstream URL and converts failures into upstream errors
// naming the resource.
func (c *Client) get(ctx context.Context, resource, rawURL string, ttl time.Duration) ([]byte, error) {
	body, err := c.fetcher.Fetch(ctx, rawURL, ttl)
	if err != nil {
		observability.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		details := map[string]any{"resource": resource}
		var se *StatusError
		if stderrors.As(err, &se) {
			details["status"] = se.StatusCode
		}
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream, "failed to fetch "+resource, err, details)
	}
	observability.UpstreamRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return body, nil
}

// fetchList decodes a {"meals": [...]} envelope. A null or missing list
// yields an empty, non-nil slice.
func fetchList[T any](ctx context.Context, c *Client, resource, rawURL string, ttl time.Duration) ([]T, error) {
	body, err := c.get(ctx, resource, rawURL, ttl)
	if err != nil {
		return nil, err
	}

	var out listResponse[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream, "failed to decode "+resource, err,
			map[string]any{"resource": resource})
	}
	if out.Meals == nil {
		return []T{}, nil
	}
	return out.Meals, nil
}

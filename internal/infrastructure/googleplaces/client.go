package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const (
	textSearchURL  = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	detailsURL     = "https://maps.googleapis.com/maps/api/place/details/json"
	photoURL       = "https://maps.googleapis.com/maps/api/place/photo"
	streetViewURL  = "https://maps.googleapis.com/maps/api/streetview"
	streetViewMeta = "https://maps.googleapis.com/maps/api/streetview/metadata"

	detailsFields = "place_id,name,formatted_address,address_components,geometry," +
		"formatted_phone_number,website,opening_hours,rating,user_ratings_total,types,photos"
)

var ErrNotFound = errors.New("place not found")

// StatusError carries a non-OK status string returned by the provider, so
// the API layer can embed it in the error body.
type StatusError struct {
	Status string
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %s", s.Status)
}

type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// TextSearch runs a free-text place search, optionally biased by city.
// A ZERO_RESULTS status is a valid empty answer, not an error.
func (c *Client) TextSearch(ctx context.Context, query, cidade string) ([]*Sugestao, error) {
	q := query
	if cidade != "" {
		q = query + " " + cidade
	}

	params := url.Values{}
	params.Set("query", q)
	params.Set("key", c.apiKey)
	params.Set("language", "pt-BR")

	var body textSearchResponse
	if err := c.getJSON(ctx, textSearchURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []*Sugestao{}, nil
	default:
		return nil, &StatusError{Status: body.Status}
	}

	results := make([]*Sugestao, len(body.Results))
	for i, raw := range body.Results {
		results[i] = raw.ToSugestao(c.apiKey)
	}
	return results, nil
}

// Details fetches the full metadata of a single place.
func (c *Client) Details(ctx context.Context, placeID string) (*Sugestao, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)
	params.Set("language", "pt-BR")

	var body detailsResponse
	if err := c.getJSON(ctx, detailsURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case "OK":
		return body.Result.ToSugestao(c.apiKey), nil
	case "ZERO_RESULTS", "NOT_FOUND", "INVALID_REQUEST":
		return nil, ErrNotFound
	default:
		return nil, &StatusError{Status: body.Status}
	}
}

// StreetViewURL checks street-view availability at the coordinate and, when
// imagery exists, returns the static image URL. Empty string means no
// coverage, which is not an error.
func (c *Client) StreetViewURL(ctx context.Context, lat, lng float64) (string, error) {
	location := fmt.Sprintf("%f,%f", lat, lng)

	params := url.Values{}
	params.Set("location", location)
	params.Set("key", c.apiKey)

	var body streetViewMetaResponse
	if err := c.getJSON(ctx, streetViewMeta+"?"+params.Encode(), &body); err != nil {
		return "", err
	}

	if body.Status != "OK" {
		return "", nil
	}

	imgParams := url.Values{}
	imgParams.Set("size", "640x400")
	imgParams.Set("location", location)
	imgParams.Set("key", c.apiKey)
	return streetViewURL + "?" + imgParams.Encode(), nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "places request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("places request failed with status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read places response")
	}

	if err = json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode places response")
	}
	return nil
}

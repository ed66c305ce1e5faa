// Package geocode resolves place names to coordinates with the Mapbox
// Geocoding v5 API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/internal/httpclient"
	"github.com/teranos/milassist/logger"
)

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Geocoder resolves a place name to a single point.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (Point, error)
}

// Client is a Mapbox geocoder.
type Client struct {
	token   string
	baseURL string
	http    *httpclient.Client
	logger  *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. Tests use it to reach httptest
// servers on loopback.
func WithHTTPClient(c *httpclient.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithBaseURL overrides the Mapbox API root.
func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(cl *Client) { cl.logger = logger.OrNop(l) }
}

// New creates a client for token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: am.DefaultMapboxBaseURL,
		http:    httpclient.New(10 * time.Second),
		logger:  logger.OrNop(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client from the mapbox section of cfg.
func NewFromConfig(cfg *am.Config, log *zap.SugaredLogger) *Client {
	hc := httpclient.NewWithOptions(cfg.GetMapboxTimeout(), httpclient.Options{
		RequestsPerMinute: cfg.Mapbox.RequestsPerMinute,
		Burst:             5,
	})
	return New(cfg.Mapbox.AccessToken,
		WithBaseURL(cfg.GetMapboxBaseURL()),
		WithHTTPClient(hc),
		WithLogger(log),
	)
}

// IsConfigured reports whether an access token is set.
func (c *Client) IsConfigured() bool {
	return c.token != ""
}

type response struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

// Geocode returns the best match for place.
func (c *Client) Geocode(ctx context.Context, place string) (Point, error) {
	if !c.IsConfigured() {
		return Point{}, errors.WithHint(
			errors.Wrap(errors.ErrServiceUnavailable, "mapbox access token is not configured"),
			"set MILASSIST_MAPBOX_ACCESS_TOKEN or mapbox.access_token in am.toml")
	}
	place = strings.TrimSpace(place)
	if place == "" {
		return Point{}, errors.Wrap(errors.ErrLocationNotFound, "empty location name")
	}

	q := url.Values{}
	q.Set("access_token", c.token)
	q.Set("limit", "1")
	endpoint := c.baseURL + "/geocoding/v5/mapbox.places/" + url.PathEscape(place) + ".json?" + q.Encode()

	start := time.Now()
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return Point{}, errors.Wrapf(err, "geocoding %q", place)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Point{}, errors.Newf("geocoding %q failed with status %d: %s", place, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data response
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Point{}, errors.Wrap(err, "failed to decode geocoding response")
	}
	if len(data.Features) == 0 || len(data.Features[0].Center) < 2 {
		return Point{}, errors.Wrapf(errors.ErrLocationNotFound, "no match for %q", place)
	}

	center := data.Features[0].Center
	p := Point{Longitude: center[0], Latitude: center[1]}
	c.logger.Debugw("Geocoded location",
		logger.FieldLocation, place,
		"place_name", data.Features[0].PlaceName,
		"lat", p.Latitude,
		"lng", p.Longitude,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return p, nil
}

var _ Geocoder = (*Client)(nil)

package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/internal/httpclient"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New("pk.test",
		WithBaseURL(srv.URL),
		WithHTTPClient(httpclient.Wrap(srv.Client())),
		WithLogger(zaptest.NewLogger(t).Sugar()),
	)
}

func TestGeocode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocoding/v5/mapbox.places/Lahore, Pakistan.json", r.URL.Path)
		assert.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"features":[{"place_name":"Lahore","center":[74.3436,31.5497]}]}`))
	})

	p, err := c.Geocode(context.Background(), "Lahore, Pakistan")
	require.NoError(t, err)
	assert.InDelta(t, 31.5497, p.Latitude, 1e-9)
	assert.InDelta(t, 74.3436, p.Longitude, 1e-9)
}

func TestGeocode_NoFeatures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	})
	_, err := c.Geocode(context.Background(), "Atlantis")
	assert.True(t, errors.Is(err, errors.ErrLocationNotFound))
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGeocode_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Authorized - Invalid Token", http.StatusUnauthorized)
	})
	_, err := c.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGeocode_NoToken(t *testing.T) {
	c := New("")
	assert.False(t, c.IsConfigured())
	_, err := c.Geocode(context.Background(), "Paris")
	assert.True(t, errors.Is(err, errors.ErrServiceUnavailable))
}

func TestGeocode_EmptyPlace(t *testing.T) {
	_, err := New("pk.test").Geocode(context.Background(), "   ")
	assert.True(t, errors.Is(err, errors.ErrLocationNotFound))
}

func TestGeocode_Cancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Geocode(ctx, "Paris")
	assert.True(t, errors.Is(err, context.Canceled))
}

package streetview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at an httptest server wrapping the
// handler, plus a counter of requests that actually reached the server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL)), &calls
}

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46}

func TestFetchImage_Success(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/streetview", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Empire State Building, NY", q.Get("location"))
		assert.Equal(t, "600x400", q.Get("size"))
		assert.Equal(t, "0", q.Get("heading"))
		assert.Equal(t, "0", q.Get("pitch"))
		assert.Equal(t, "90", q.Get("fov"))
		assert.Equal(t, "50", q.Get("radius"))
		assert.Equal(t, "default", q.Get("source"))
		assert.Equal(t, "true", q.Get("return_error_code"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpegBytes)
	})

	data, err := client.FetchImage(context.Background(), AddressLocation("Empire State Building, NY"), ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, data)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchImage_LatLngSelector(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40.748817,-73.985428", r.URL.Query().Get("location"))
		assert.Empty(t, r.URL.Query().Get("pano"))
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpegBytes)
	})

	_, err := client.FetchImage(context.Background(), LatLngLocation(40.748817, -73.985428), ImageOptions{})
	require.NoError(t, err)
}

func TestFetchImage_PanoOmitsRadius(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "CAoSLEFGMVFpcE0", q.Get("pano"))
		assert.Empty(t, q.Get("location"))
		assert.False(t, q.Has("radius"), "radius does not apply to pano requests")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpegBytes)
	})

	_, err := client.FetchImage(context.Background(), PanoLocation("CAoSLEFGMVFpcE0"), ImageOptions{})
	require.NoError(t, err)
}

func TestFetchImage_ErrorPayloadWithHTTP200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","error_message":"No imagery here"}`))
	})

	_, err := client.FetchImage(context.Background(), AddressLocation("Atlantis"), ImageOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ZERO_RESULTS", apiErr.Status)
	assert.Equal(t, "No imagery here", apiErr.Message)
}

func TestFetchImage_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := client.FetchImage(context.Background(), AddressLocation("anywhere"), ImageOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestFetchImage_MissingAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	client := New("", WithBaseURL(srv.URL))
	_, err := client.FetchImage(context.Background(), AddressLocation("anywhere"), ImageOptions{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestFetchImage_UnsetLocation(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.FetchImage(context.Background(), Location{}, ImageOptions{})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, int32(0), calls.Load(), "validation must happen before any network call")
}

func TestFetchImage_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts ImageOptions
	}{
		{"malformed size", ImageOptions{Size: "600by400"}},
		{"zero width", ImageOptions{Size: "0x400"}},
		{"negative radius", ImageOptions{Radius: -5}},
		{"unknown source", ImageOptions{Source: "indoor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
			_, err := client.FetchImage(context.Background(), AddressLocation("anywhere"), tt.opts)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, int32(0), calls.Load())
		})
	}
}

func TestFetchMetadata_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/streetview/metadata", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "40.7,-73.9", q.Get("location"))
		assert.Equal(t, "50", q.Get("radius"))
		assert.Equal(t, "default", q.Get("source"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","copyright":"c","date":"2021-01","pano_id":"P1","location":{"lat":40.7,"lng":-73.9}}`))
	})

	meta, err := client.FetchMetadata(context.Background(), LatLngLocation(40.7, -73.9), MetadataOptions{})
	require.NoError(t, err)
	assert.Equal(t, "OK", meta.Status)
	assert.Equal(t, "c", meta.Copyright)
	assert.Equal(t, "2021-01", meta.Date)
	assert.Equal(t, "P1", meta.PanoID)
	require.NotNil(t, meta.Location)
	assert.Equal(t, 40.7, meta.Location.Lat)
	assert.Equal(t, -73.9, meta.Location.Lng)
}

func TestFetchMetadata_ZeroResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS"}`))
	})

	_, err := client.FetchMetadata(context.Background(), AddressLocation("nowhere"), MetadataOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ZERO_RESULTS", apiErr.Status, "the literal status string must be propagated")
}

func TestFetchMetadata_PanoOmitsRadius(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "P1", r.URL.Query().Get("pano"))
		assert.False(t, r.URL.Query().Has("radius"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","pano_id":"P1"}`))
	})

	_, err := client.FetchMetadata(context.Background(), PanoLocation("P1"), MetadataOptions{})
	require.NoError(t, err)
}

func TestFetchMetadata_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchMetadata(context.Background(), AddressLocation("anywhere"), MetadataOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestFetchMetadata_MissingAPIKey(t *testing.T) {
	client := New("")
	_, err := client.FetchMetadata(context.Background(), AddressLocation("anywhere"), MetadataOptions{})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

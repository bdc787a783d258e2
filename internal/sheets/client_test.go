package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSetsRequestID(t *testing.T) {
	var gotID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
	}))
	defer ts.Close()

	c := NewClient(ts.URL, nil)
	_, err := c.Read(context.Background())
	require.NoError(t, err)

	parsed, err := uuid.Parse(gotID)
	require.NoError(t, err, "X-Request-ID must be a UUID")
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestClientReadNotFoundIsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, nil)
	body, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestClientUpdateSendsCSV(t *testing.T) {
	var gotMethod, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer ts.Close()

	c := NewClient(ts.URL, nil)
	require.NoError(t, c.Update(context.Background(), []byte("Item Needed\nMilk\n")))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "text/csv", gotContentType)
}

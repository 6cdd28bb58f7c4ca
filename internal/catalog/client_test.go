package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"videogames/backend/internal/apperror"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret", zap.NewNop(), WithHTTPClient(srv.Client()))
}

func TestClient_ListGames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "10000", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":3498,"name":"Grand Theft Auto V"}]}`))
	})

	body, err := client.ListGames(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1,"results":[{"id":3498,"name":"Grand Theft Auto V"}]}`, string(body))
}

func TestClient_SearchGamesLowercasesName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the witcher 3", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	_, err := client.SearchGames(context.Background(), "The Witcher 3")
	require.NoError(t, err)
}

func TestClient_GetGame(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/games/3498" {
			_, _ = w.Write([]byte(`{"id":3498}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	})

	body, err := client.GetGame(context.Background(), "3498")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3498}`, string(body))

	_, err = client.GetGame(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, IsStatusError(err))
	assert.True(t, errors.Is(err, apperror.ErrUpstream))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestClient_GamesByGenre(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("page_size"))
		if r.URL.Query().Get("genres") == "action" {
			_, _ = w.Write([]byte(`{"results":[{"id":1}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	body, found, err := client.GamesByGenre(context.Background(), "action")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotEmpty(t, body)

	_, found, err = client.GamesByGenre(context.Background(), "knitting")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_ListGenres(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genres", r.URL.Path)
		_, _ = w.Write([]byte(`{"count":2,"results":[{"id":4,"name":"Action","slug":"action"},{"id":51,"name":"Indie","slug":"indie"}]}`))
	})

	genres, err := client.ListGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Indie", genres[1].Name)
}

func TestClient_TransportAndDecodeFailures(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		})
		_, err := client.ListGames(context.Background())
		require.Error(t, err)
		assert.False(t, IsStatusError(err))
	})

	t.Run("unreachable catalog", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewClient(srv.URL, "secret", zap.NewNop())

		_, err := client.ListGames(context.Background())
		require.Error(t, err)
		assert.False(t, IsStatusError(err))
	})
}

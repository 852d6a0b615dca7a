package playback_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karalvik/npuzzle/board"
	"github.com/karalvik/npuzzle/playback"
)

// newTestServer builds a server with a running hub bound to the test's
// lifetime.
func newTestServer(t *testing.T) *playback.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := playback.NewHub(nil)
	go hub.Run(ctx)

	return playback.NewServer(hub, playback.ServerConfig{})
}

func postJSON(t *testing.T, srv http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSolve_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":  3,
		"start": []int{1, 2, 3, 4, 0, 6, 7, 5, 8},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Solvable bool             `json:"solvable"`
		Cost     int              `json:"cost"`
		Frames   []playback.Frame `json:"frames"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Solvable)
	require.Equal(t, 2, resp.Cost)
	require.Len(t, resp.Frames, 2)

	last := resp.Frames[len(resp.Frames)-1]
	require.Equal(t, board.Goal(3).Tiles(), last.Tiles)
	require.Equal(t, resp.Cost, last.Step)
	require.Equal(t, resp.Cost, last.Total)
}

func TestSolve_Unsolvable(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":  3,
		"start": []int{2, 1, 3, 4, 5, 6, 7, 8, 0},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"solvable":false}`, rec.Body.String())
}

func TestSolve_BadInput(t *testing.T) {
	srv := newTestServer(t)

	// wrong length
	rec := postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":  3,
		"start": []int{1, 2, 3, 4, 5, 6, 7, 0},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate tile
	rec = postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":  3,
		"start": []int{1, 1, 3, 4, 5, 6, 7, 8, 0},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown heuristic
	rec = postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":      3,
		"start":     []int{1, 2, 3, 4, 0, 6, 7, 5, 8},
		"heuristic": "euclid",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed JSON body
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("{")))
	rec2 := httptest.NewRecorder()
	srv.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestSolve_CustomGoal(t *testing.T) {
	srv := newTestServer(t)

	// solve toward a non-canonical goal one move away
	goal := board.Goal(3)
	start, err := goal.Apply(board.Up)
	require.NoError(t, err)

	rec := postJSON(t, srv, "/api/solve", map[string]interface{}{
		"size":  3,
		"start": goal.Tiles(),
		"goal":  start.Tiles(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Solvable bool `json:"solvable"`
		Cost     int  `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Solvable)
	require.Equal(t, 1, resp.Cost)
}

func TestScramble(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/scramble", map[string]interface{}{
		"size": 3,
		"seed": 11,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Size  int   `json:"size"`
		Tiles []int `json:"tiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Size)

	b, err := board.New(resp.Size, resp.Tiles)
	require.NoError(t, err)
	ok, err := board.Solvable(b, board.Goal(3))
	require.NoError(t, err)
	require.True(t, ok, "scramble endpoint must return a solvable board")
}

func TestScramble_BadInput(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/scramble", map[string]interface{}{"size": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, srv, "/api/scramble", map[string]interface{}{"size": 3, "mode": "chaotic"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

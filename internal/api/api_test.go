package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordscore/internal/api"
	"github.com/mcoot/wordscore/internal/api/apierr"
	"github.com/mcoot/wordscore/internal/api/response"
	"github.com/mcoot/wordscore/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		BoardService: app.BoardService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createBoard(t *testing.T, rows []string) response.Board {
	t.Helper()
	var body any
	if rows != nil {
		body = map[string]any{"rows": rows}
	}
	rr := ts.request(http.MethodPost, "/api/v1/boards", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var b response.Board
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	return b
}

func emptyRows() []string {
	rows := make([]string, 15)
	for i := range rows {
		rows[i] = strings.Repeat(".", 15)
	}
	return rows
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateEmptyBoard(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("BOARD1")

	b := ts.createBoard(t, nil)
	assert.Equal(t, "BOARD1", b.ID)
	assert.Equal(t, emptyRows(), b.Rows)
	assert.Equal(t, 0, b.TileCount)
}

func TestCreateBoardFromRows(t *testing.T) {
	ts := newTestServer(t)
	rows := emptyRows()
	rows[4] = ".....cat......."

	b := ts.createBoard(t, rows)
	assert.Equal(t, ".....CAT.......", b.Rows[4])
	assert.Equal(t, 3, b.TileCount)
}

func TestCreateBoardMalformed(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/boards", map[string]any{"rows": emptyRows()[:14]})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeMalformedBoard, decodeError(t, rr).Code)
}

func TestGetBoard(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/boards/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var b response.Board
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	assert.Equal(t, created.ID, b.ID)
}

func TestGetBoardAsText(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/boards/"+created.ID+"?format=text", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Board(`\n"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestGetBoardNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/boards/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeBoardNotFound, decodeError(t, rr).Code)
}

func TestDeleteBoard(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	rr := ts.request(http.MethodDelete, "/api/v1/boards/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/boards/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestScoreStoredBoardDoesNotMutate(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	move := map[string]any{"x": 5, "y": 4, "direction": "across", "tiles": "CAT"}
	rr := ts.request(http.MethodPost, "/api/v1/boards/"+created.ID+"/score", move)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result response.ScoreResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Score)
	assert.Len(t, result.Tiles, 3)

	rr = ts.request(http.MethodGet, "/api/v1/boards/"+created.ID, nil)
	var b response.Board
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	assert.Equal(t, 0, b.TileCount)
}

func TestPlayAndHistory(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)
	path := "/api/v1/boards/" + created.ID

	rr := ts.request(http.MethodPost, path+"/play", map[string]any{"x": 5, "y": 4, "direction": "across", "tiles": "CAT"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var play response.PlayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &play))
	assert.Equal(t, 5, play.Result.Score)
	assert.Equal(t, ".....CAT.......", play.Board.Rows[4])
	assert.Equal(t, "across", play.Play.Direction)

	rr = ts.request(http.MethodPost, path+"/play", map[string]any{"x": 6, "y": 5, "direction": "d", "tiles": "X"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = ts.request(http.MethodGet, path+"/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var history response.History
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	assert.Equal(t, created.ID, history.BoardID)
	require.Len(t, history.Plays, 2)
	assert.Equal(t, "down", history.Plays[1].Direction)
	assert.Equal(t, 5+9, history.TotalScore)
}

func TestPlayInvalidDirection(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/boards/"+created.ID+"/play", map[string]any{"x": 5, "y": 4, "direction": "diagonal", "tiles": "CAT"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidDirection, decodeError(t, rr).Code)
}

func TestPlayOffBoardLeavesBoardUnchanged(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)
	path := "/api/v1/boards/" + created.ID

	rr := ts.request(http.MethodPost, path+"/play", map[string]any{"x": 13, "y": 0, "direction": "across", "tiles": "ABC"})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeOutOfBounds, apiErr.Code)
	assert.Contains(t, apiErr.Message, "x = 15")

	rr = ts.request(http.MethodGet, path, nil)
	var b response.Board
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	assert.Equal(t, 0, b.TileCount)
}

func TestPlayInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createBoard(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/"+created.ID+"/play", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestStatelessScore(t *testing.T) {
	ts := newTestServer(t)
	rows := emptyRows()
	rows[4] = ".....CAT......."

	body := map[string]any{
		"rows": rows,
		"move": map[string]any{"x": 6, "y": 5, "direction": "across", "tiles": "X"},
	}
	rr := ts.request(http.MethodPost, "/api/v1/score", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result response.ScoreResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 8+9, result.Score)
	assert.Equal(t, 9, result.CrossScore)
	assert.Equal(t, 1, result.CrossWords)
	assert.True(t, result.Attached)
}

func TestStatelessScoreEmptyBoardBonus(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"move": map[string]any{"x": 3, "y": 0, "direction": "across", "tiles": "B"},
	}
	rr := ts.request(http.MethodPost, "/api/v1/score", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result response.ScoreResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 6, result.Score)
	require.Len(t, result.Tiles, 1)
	assert.Equal(t, "DL", result.Tiles[0].Multiplier)
}

func TestStatelessScoreInvalidLetter(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"move": map[string]any{"x": 3, "y": 0, "direction": "across", "tiles": "B?"},
	}
	rr := ts.request(http.MethodPost, "/api/v1/score", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidLetter, decodeError(t, rr).Code)
}

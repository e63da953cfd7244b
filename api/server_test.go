package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/stretchr/testify/require"
)

type MockController struct {
	Error          error
	CreateResponse *controller.CreateResponse
	StatusResponse *controller.StatusResponse
	FramesResponse *controller.ListGameFramesResponse

	moves []*controller.MoveRequest
}

func (mc *MockController) Create(ctx context.Context, req *controller.CreateRequest) (*controller.CreateResponse, error) {
	return mc.CreateResponse, mc.Error
}

func (mc *MockController) Start(ctx context.Context, id string) error {
	return mc.Error
}

func (mc *MockController) Move(ctx context.Context, id string, req *controller.MoveRequest) error {
	mc.moves = append(mc.moves, req)
	return mc.Error
}

func (mc *MockController) Status(ctx context.Context, id string) (*controller.StatusResponse, error) {
	return mc.StatusResponse, mc.Error
}

func (mc *MockController) ListGameFrames(ctx context.Context, id string, limit, offset int) (*controller.ListGameFramesResponse, error) {
	return mc.FramesResponse, mc.Error
}

func testFrame(t *testing.T) *rules.Frame {
	g, err := rules.New(5, 4, 2, rules.WithSource(rules.NewSource(7)))
	require.NoError(t, err)
	g.Tick(rules.DirectionRight)
	return g.Frame()
}

func createAPIServer(t *testing.T) (*Server, *MockController) {
	frame := testFrame(t)
	var client = &MockController{
		CreateResponse: &controller.CreateResponse{ID: "abc_123"},
		StatusResponse: &controller.StatusResponse{
			Game:      &controller.Session{ID: "abc_123", Status: controller.GameStatusRunning},
			LastFrame: frame,
		},
		FramesResponse: &controller.ListGameFramesResponse{Frames: []*rules.Frame{frame}, Count: 1},
	}
	s := New(":1234", client)
	return s, client
}

func serve(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestCreate(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "POST", "/games", []byte("{}"))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := &controller.CreateResponse{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(resp))
	require.Equal(t, "abc_123", resp.ID)
}

func TestCreate_BadBody(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "POST", "/games", []byte("{"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreate_InvalidConfiguration(t *testing.T) {
	s, client := createAPIServer(t)
	client.Error = rules.ErrInvalidConfiguration

	rr := serve(s, "POST", "/games", []byte(`{"width": -1}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreate_OversizedBoard(t *testing.T) {
	s := New(":1234", controller.New(controller.InMemStore()))

	rr := serve(s, "POST", "/games", []byte(`{"width": 4294967296, "height": 4294967296}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(s, "POST", "/games", []byte(`{"width": 60000, "height": 60000}`))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStart(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "POST", "/games/abc_123/start", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestMove(t *testing.T) {
	s, client := createAPIServer(t)

	rr := serve(s, "POST", "/games/abc_123/move", []byte(`{"direction": "up"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, client.moves, 1)
	require.Equal(t, "up", client.moves[0].Direction)
}

func TestMove_Errors(t *testing.T) {
	s, client := createAPIServer(t)

	cases := map[error]int{
		controller.ErrNotFound:         http.StatusNotFound,
		controller.ErrInvalidDirection: http.StatusBadRequest,
		controller.ErrInputQueueFull:   http.StatusTooManyRequests,
		rules.ErrGameOver:              http.StatusConflict,
		errors.New("boom"):             http.StatusInternalServerError,
	}
	for err, code := range cases {
		client.Error = err
		rr := serve(s, "POST", "/games/abc_123/move", []byte(`{"direction": "up"}`))
		require.Equal(t, code, rr.Code, err.Error())
	}
}

func TestStatus(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "GET", "/games/abc_123", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := &controller.StatusResponse{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(resp))
	require.Equal(t, "abc_123", resp.Game.ID)
	require.Equal(t, int64(1), resp.LastFrame.Turn)
}

func TestListFrames(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "GET", "/games/abc_123/frames?limit=5&offset=0", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(s, "GET", "/games/abc_123/frames?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBoard(t *testing.T) {
	s, client := createAPIServer(t)

	rr := serve(s, "GET", "/games/abc_123/board", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, client.StatusResponse.LastFrame.String(), rr.Body.String())
}

func TestImage(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := serve(s, "GET", "/games/abc_123/image.png?cell=10", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "image/png", rr.Header().Get("Content-Type"))

	img, err := png.Decode(rr.Body)
	require.NoError(t, err)
	require.Equal(t, 50, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	rr = serve(s, "GET", "/games/abc_123/image.png?cell=0", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestImage_TooLarge(t *testing.T) {
	s, client := createAPIServer(t)
	g, err := rules.New(250, 10, 2, rules.WithSource(rules.NewSource(7)))
	require.NoError(t, err)
	client.StatusResponse.LastFrame = g.Frame()

	rr := serve(s, "GET", "/games/abc_123/image.png?cell=20", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(s, "GET", "/games/abc_123/image.png?cell=16", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestBoard_NoFrames(t *testing.T) {
	s, client := createAPIServer(t)
	client.StatusResponse.LastFrame = nil

	rr := serve(s, "GET", "/games/abc_123/board", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

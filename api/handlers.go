package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCellSize = 20
	maxImageSide    = 4096
)

func (s *Server) createGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := &controller.CreateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid create request"))
		return
	}
	resp, err := s.controller.Create(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) startGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := s.controller.Start(r.Context(), ps.ByName("id")); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) moveGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := &controller.MoveRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid move request"))
		return
	}
	if err := s.controller.Move(r.Context(), ps.ByName("id"), req); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	resp, err := s.controller.Status(r.Context(), ps.ByName("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listFrames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	q := r.URL.Query()
	limit, err := queryInt(q.Get("limit"), 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid limit"))
		return
	}
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid offset"))
		return
	}
	resp, err := s.controller.ListGameFrames(r.Context(), ps.ByName("id"), limit, offset)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) board(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	frame, ok := s.lastFrame(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := frame.Render(w); err != nil {
		log.WithError(err).Warn("unable to write board")
	}
}

func (s *Server) image(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cellSize, err := queryInt(r.URL.Query().Get("cell"), defaultCellSize)
	if err != nil || cellSize < 1 || cellSize > 100 {
		writeError(w, http.StatusBadRequest, errors.New("cell must be between 1 and 100"))
		return
	}
	frame, ok := s.lastFrame(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	if frame.Width*cellSize > maxImageSide || frame.Height*cellSize > maxImageSide {
		writeError(w, http.StatusBadRequest, errors.Errorf("image would exceed %dpx, use a smaller cell", maxImageSide))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := renderPNG(w, frame, cellSize); err != nil {
		log.WithError(err).Warn("unable to write board image")
	}
}

func (s *Server) lastFrame(w http.ResponseWriter, r *http.Request, id string) (*rules.Frame, bool) {
	resp, err := s.controller.Status(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return nil, false
	}
	if resp.LastFrame == nil {
		writeError(w, http.StatusNotFound, errors.New("game has no frames"))
		return nil, false
	}
	return resp.LastFrame, true
}

func queryInt(v string, defaults int) (int, error) {
	if v == "" {
		return defaults, nil
	}
	return strconv.Atoi(v)
}

func handleError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case controller.ErrNotFound:
		writeError(w, http.StatusNotFound, err)
	case rules.ErrGameOver:
		writeError(w, http.StatusConflict, err)
	case controller.ErrInputQueueFull:
		writeError(w, http.StatusTooManyRequests, err)
	case controller.ErrInvalidDirection, rules.ErrInvalidConfiguration:
		writeError(w, http.StatusBadRequest, err)
	default:
		log.WithError(err).Error("api request failed")
		writeError(w, http.StatusInternalServerError, err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, &errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("unable to write response")
	}
}

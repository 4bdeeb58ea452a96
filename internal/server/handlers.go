package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/tags"
	"github.com/matzehuels/tagcloud/pkg/words"
)

// statusClientClosedRequest reports a request abandoned by the client.
const statusClientClosedRequest = 499

// cloudRequest is the body of POST /v1/clouds.
type cloudRequest struct {
	Words   []string `json:"words"`
	Preset  string   `json:"preset"`
	Style   string   `json:"style"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Seed    uint64   `json:"seed"`
	Shuffle *bool    `json:"shuffle"` // default true
	Format  string   `json:"format"`  // default svg
	Boxes   bool     `json:"boxes"`
}

func (req cloudRequest) options() pipeline.Options {
	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	shuffle := req.Shuffle == nil || *req.Shuffle
	return pipeline.Options{
		Words:   req.Words,
		Preset:  req.Preset,
		Style:   req.Style,
		Width:   req.Width,
		Height:  req.Height,
		Seed:    req.Seed,
		Shuffle: shuffle,
		Formats: []string{format},
		Boxes:   req.Boxes,
	}
}

type errorResponse struct {
	Code    tcerrors.Code `json:"code"`
	Message string        `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"styles":  tags.ThemeNames(),
		"presets": words.Presets(),
	})
}

func (s *Server) handleCreateCloud(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req cloudRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, tcerrors.Wrap(tcerrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	opts := req.options()
	opts.Logger = s.logger.With("id", RequestIDFromContext(r.Context()))
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Cloud-ID", result.ID)
	if result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// writeError maps validation errors to 400, abandoned requests to 499,
// timeouts to 503 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
			Code:    tcerrors.ErrCodeInvalidInput,
			Message: "request body too large",
		})
		return
	}

	if tcerrors.IsValidation(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    tcerrors.GetCode(err),
			Message: tcerrors.UserMessage(err),
		})
		return
	}

	id := RequestIDFromContext(r.Context())
	switch {
	case errors.Is(err, context.Canceled):
		s.logger.Debug("client went away", "id", id)
		writeJSON(w, statusClientClosedRequest, errorResponse{
			Code:    tcerrors.ErrCodeCanceled,
			Message: "request canceled",
		})
		return
	case errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("render cloud timed out", "id", id)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Code:    tcerrors.ErrCodeTimeout,
			Message: "request timed out",
		})
		return
	}

	s.logger.Error("render cloud", "id", id, "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Code:    tcerrors.ErrCodeInternal,
		Message: "internal error",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

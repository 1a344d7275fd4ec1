package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gaprule/gaprule/pkg/buildinfo"
	"github.com/gaprule/gaprule/pkg/errors"
	"github.com/gaprule/gaprule/pkg/pipeline"
	"github.com/gaprule/gaprule/pkg/scene"
)

// RenderRequest is the POST /v1/render body.
type RenderRequest struct {
	Scene   *scene.Scene `json:"scene"`
	Formats []string     `json:"formats,omitempty"`
	Indent  bool         `json:"indent,omitempty"`
	Refresh bool         `json:"refresh,omitempty"`
}

// RenderResponse is the POST /v1/render result. Artifacts are keyed by
// format; both supported formats are text, so they embed directly.
type RenderResponse struct {
	Name       string            `json:"name,omitempty"`
	LayoutHash string            `json:"layout_hash"`
	Artifacts  map[string]string `json:"artifacts"`
	Stats      renderStats       `json:"stats"`
	Cached     cachedStages      `json:"cached"`
}

type renderStats struct {
	ItemCount    int           `json:"item_count"`
	SegmentCount int           `json:"segment_count"`
	LayoutTime   time.Duration `json:"layout_time_ns"`
	RenderTime   time.Duration `json:"render_time_ns"`
}

type cachedStages struct {
	Layout bool `json:"layout"`
	Render bool `json:"render"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Scene:   req.Scene,
		Formats: req.Formats,
		Indent:  req.Indent,
		Refresh: req.Refresh,
	})
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	resp := RenderResponse{
		LayoutHash: result.LayoutHash,
		Artifacts:  make(map[string]string, len(result.Artifacts)),
		Stats: renderStats{
			ItemCount:    result.Stats.ItemCount,
			SegmentCount: result.Stats.SegmentCount,
			LayoutTime:   result.Stats.LayoutTime,
			RenderTime:   result.Stats.RenderTime,
		},
		Cached: cachedStages{
			Layout: result.CacheInfo.LayoutHit,
			Render: result.CacheInfo.RenderHit,
		},
	}
	if req.Scene != nil {
		resp.Name = req.Scene.Name
	}
	for format, data := range result.Artifacts {
		resp.Artifacts[format] = string(data)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("request failed",
		"path", r.URL.Path,
		"status", status,
		"error", err,
		"request_id", RequestID(r.Context()))
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps structured error codes onto HTTP status codes. Validation
// problems are the caller's fault; everything else is ours.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScene,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSceneNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadRequest
	}
}

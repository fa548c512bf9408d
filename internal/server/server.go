package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MalithGihan/dqa-service/internal/ingest"
	"github.com/MalithGihan/dqa-service/internal/quality"
	"github.com/MalithGihan/dqa-service/internal/store"
	"github.com/MalithGihan/dqa-service/internal/validate"
	"github.com/MalithGihan/dqa-service/pkg/types"
)

const maxUpload = 64 << 20

type Server struct {
	store    *store.FS
	analyzer *quality.Analyzer
	debug    bool
}

func New(st *store.FS, a *quality.Analyzer, debug bool) *Server {
	if a == nil {
		a = quality.New()
	}
	return &Server{store: st, analyzer: a, debug: debug}
}

type errorResp struct {
	Error     string `json:"error"`
	File      string `json:"file,omitempty"`
	ElementID string `json:"element_id,omitempty"`
	Index     *int   `json:"index,omitempty"`
	Field     string `json:"field,omitempty"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if s.debug {
		r.Use(middleware.Logger)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"dqa-service"}`))
	})

	r.Post("/analyze", s.handleAnalyze)
	r.Post("/ingest", s.handleIngest)
	r.Get("/jobs/{id}/scene", s.handleJobScene)
	r.Get("/jobs/{id}/analyze", s.handleJobAnalyze)
	return r
}

// handleAnalyze scores the snapshot in the request body. The format comes
// from ?format= or, failing that, the Content-Type.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("format")
	if kind == "" {
		kind = kindFromContentType(r.Header.Get("Content-Type"))
	}
	body, err := readAll(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	scene, err := ingest.Parse(kind, body)
	if err != nil {
		writeParseError(w, "", err)
		return
	}
	s.respondReport(w, scene)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, errorResp{Error: "no files uploaded"})
		return
	}
	jobID, err := s.store.NewJob()
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
			return
		}
		err = s.store.Put(jobID, fh.Filename, src)
		src.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
			return
		}
	}
	if s.debug {
		log.Printf("job %s: stored %d upload(s)", jobID, len(files))
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "jobId": jobID})
}

func (s *Server) handleJobScene(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.loadJob(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, scene)
}

func (s *Server) handleJobAnalyze(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.loadJob(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	s.respondReport(w, scene)
}

// loadJob merges every supported upload of a job into one scene. Files of
// unknown type are skipped.
func (s *Server) loadJob(w http.ResponseWriter, id string) (types.Scene, bool) {
	paths, err := s.store.Files(id)
	if errors.Is(err, store.ErrNoJob) {
		writeError(w, http.StatusNotFound, errorResp{Error: "job not found"})
		return types.Scene{}, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return types.Scene{}, false
	}
	var scenes []types.Scene
	for _, p := range paths {
		kind := ingest.DetectType(p)
		if kind == "unknown" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			writeError(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
			return types.Scene{}, false
		}
		sc, err := ingest.Parse(kind, b)
		if err != nil {
			writeParseError(w, filepath.Base(p), err)
			return types.Scene{}, false
		}
		scenes = append(scenes, sc)
	}
	return ingest.Merge(scenes...), true
}

func (s *Server) respondReport(w http.ResponseWriter, scene types.Scene) {
	rep := s.analyzer.Analyze(scene)
	if err := validate.Report(rep); err != nil {
		log.Printf("report failed contract check: %v", err)
		writeError(w, http.StatusInternalServerError, errorResp{Error: "report failed contract check"})
		return
	}
	if s.debug {
		log.Printf("analyzed %d element(s): score=%d grade=%s", rep.ElementCount, rep.Score, rep.Grade)
	}
	writeJSON(w, http.StatusOK, rep)
}

func kindFromContentType(ct string) string {
	mt, _, _ := mime.ParseMediaType(ct)
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return "yaml"
	case "application/xml", "text/xml":
		return "drawio"
	case "image/svg+xml":
		return "svg"
	default:
		return "json"
	}
}

func readAll(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, maxUpload)
	defer body.Close()
	return io.ReadAll(body)
}

func writeParseError(w http.ResponseWriter, file string, err error) {
	resp := errorResp{Error: err.Error(), File: file}
	var ie *types.InvalidElementError
	if errors.As(err, &ie) {
		resp.ElementID = ie.ID
		resp.Field = ie.Field
		if ie.Index >= 0 {
			idx := ie.Index
			resp.Index = &idx
		}
	}
	status := http.StatusBadRequest
	if errors.Is(err, ingest.ErrUnsupported) {
		status = http.StatusUnsupportedMediaType
	}
	writeError(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, resp errorResp) {
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// multipartOverhead is allowed on top of the upload limit for form framing.
const multipartOverhead = 1 << 20

// ParseRequest is the JSON body for /parse. Exactly one of Text or URL is
// required.
type ParseRequest struct {
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
	Name    string `json:"name,omitempty"`
	Enhance bool   `json:"enhance,omitempty"`
	Seed    *int64 `json:"seed,omitempty"`
}

// EnhanceRequest is the JSON body for /enhance.
type EnhanceRequest struct {
	Record *types.ResumeRecord `json:"record"`
	Text   string              `json:"text,omitempty"`
	Seed   *int64              `json:"seed,omitempty"`
}

// EnhanceResponse is the response for /enhance.
type EnhanceResponse struct {
	Record      *types.ResumeRecord `json:"record"`
	Suggestions []string            `json:"suggestions"`
	Issues      []validation.Issue  `json:"issues"`
	Seed        int64               `json:"seed"`
}

// parseJob is a decoded /parse request.
type parseJob struct {
	source  pipeline.Source
	enhance bool
	seed    int64
}

// handleParse parses an uploaded file, pasted text or a URL.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	job, err := s.decodeParseRequest(w, r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	out, err := pipeline.Run(r.Context(), job.source, s.runOptions(job, nil))
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleParseStream runs a parse and reports each step as a server-sent
// event, ending with a "result" or "error" event.
func (s *Server) handleParseStream(w http.ResponseWriter, r *http.Request) {
	job, err := s.decodeParseRequest(w, r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts := s.runOptions(job, func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("progress", event); err != nil {
			s.logger.Debug("progress event not delivered", "error", err)
		}
	})
	out, err := pipeline.Run(r.Context(), job.source, opts)
	if err != nil {
		sse.WriteError(HTTPStatus(err), err.Error())
		return
	}
	sse.WriteResult(out)
}

// handleEnhance applies the enhancement pass to a client-supplied record.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxUploadBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Record == nil {
		s.errResponse(w, &ErrValidation{Field: "record", Message: "is required"})
		return
	}

	seed := seedOrNow(req.Seed)
	enhanced := enhance.New(seed, s.logger).Enhance(req.Record, req.Text)
	suggestions := enhance.Suggestions(req.Text)
	if suggestions == nil {
		suggestions = []string{}
	}
	issues := validation.CheckRecord(enhanced)
	if issues == nil {
		issues = []validation.Issue{}
	}

	s.jsonResponse(w, http.StatusOK, EnhanceResponse{
		Record:      enhanced,
		Suggestions: suggestions,
		Issues:      issues,
		Seed:        seed,
	})
}

func (s *Server) runOptions(job parseJob, onProgress pipeline.ProgressCallback) pipeline.RunOptions {
	opts := pipeline.RunOptions{
		Enhance:    job.enhance,
		Seed:       job.seed,
		UseBrowser: s.useBrowser,
		MaxBytes:   s.maxUploadBytes,
		Logger:     s.logger,
		OnProgress: onProgress,
	}
	if s.store != nil {
		opts.Store = s.store
	}
	return opts
}

// decodeParseRequest reads either a multipart upload with a "file" field or
// a JSON ParseRequest.
func (s *Server) decodeParseRequest(w http.ResponseWriter, r *http.Request) (parseJob, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return s.decodeUpload(w, r)
	}

	var req ParseRequest
	body := http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if tooLarge(err) {
			return parseJob{}, fmt.Errorf("request body: %w", errTooLarge(s.maxUploadBytes))
		}
		return parseJob{}, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	job := parseJob{enhance: req.Enhance, seed: seedOrNow(req.Seed)}
	switch {
	case req.Text != "" && req.URL != "":
		return parseJob{}, &ErrValidation{Field: "url", Message: "text and url are mutually exclusive"}
	case req.URL != "":
		if err := checkURL(req.URL); err != nil {
			return parseJob{}, err
		}
		job.source = pipeline.Source{Name: req.Name, URL: req.URL}
	case req.Text != "":
		job.source = pipeline.Source{Name: req.Name, Text: req.Text}
	default:
		return parseJob{}, &ErrValidation{Field: "text", Message: "text or url is required"}
	}
	return job, nil
}

func (s *Server) decodeUpload(w http.ResponseWriter, r *http.Request) (parseJob, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		if tooLarge(err) {
			return parseJob{}, fmt.Errorf("upload: %w", errTooLarge(s.maxUploadBytes))
		}
		return parseJob{}, &ErrValidation{Field: "file", Message: "invalid multipart form: " + err.Error()}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return parseJob{}, &ErrValidation{Field: "file", Message: "is required"}
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		return parseJob{}, fmt.Errorf("failed to read upload: %w", err)
	}

	job := parseJob{
		source:  pipeline.Source{Name: header.Filename, Data: data},
		enhance: formBool(r.FormValue("enhance")),
	}
	var seed *int64
	if v := r.FormValue("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return parseJob{}, &ErrValidation{Field: "seed", Message: "must be an integer"}
		}
		seed = &n
	}
	job.seed = seedOrNow(seed)
	if len(data) == 0 {
		return parseJob{}, &ErrValidation{Field: "file", Message: "file is empty"}
	}
	return job, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return &ErrValidation{Field: "url", Message: "must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ErrValidation{Field: "url", Message: "scheme must be http or https"}
	}
	return nil
}

func formBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// seedOrNow returns *seed, or a time-based seed when the client sent none.
func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func errTooLarge(limit int64) error {
	return fmt.Errorf("%w: limit is %d bytes", ingestion.ErrFileTooLarge, limit)
}

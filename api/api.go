package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/0xalexb/confgen/config"
	"github.com/0xalexb/confgen/config/fetcher/file"
	yamlparser "github.com/0xalexb/confgen/config/parser/yaml"
	"github.com/0xalexb/confgen/diag"
	"github.com/0xalexb/confgen/editor"
	"github.com/0xalexb/confgen/listener/middleware"
	"github.com/0xalexb/confgen/schema"

	"github.com/goccy/go-yaml"
)

// Content types used by the bridge.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

const (
	// MaxDiagnosticTimeout caps the timeout a caller may request for a
	// diagnostic run. It stays below RequestTimeout so the run result, not
	// the request timeout, reaches the UI.
	MaxDiagnosticTimeout = 20 * time.Second
	// RequestTimeout bounds every bridge request.
	RequestTimeout = 30 * time.Second
)

var (
	// ErrNilSession is returned by New without an editor session.
	ErrNilSession = errors.New("editor session must not be nil")
	// ErrNilRunner is returned by New without a diagnostic runner.
	ErrNilRunner = errors.New("diagnostic runner must not be nil")
)

// IssuesResponse reports the validation state of the draft.
type IssuesResponse struct {
	Valid  bool          `json:"valid"`
	Issues schema.Issues `json:"issues"`
}

func newIssuesResponse(issues schema.Issues) IssuesResponse {
	if issues == nil {
		issues = schema.Issues{}
	}

	return IssuesResponse{Valid: len(issues) == 0, Issues: issues}
}

// Handler is the bridge http.Handler.
type Handler struct {
	session *editor.Session
	runner  *diag.Runner
	parser  config.Parser
	handler http.Handler

	allowedHosts []string
	diagRate     float64
	diagBurst    int
}

// New builds the bridge handler over session and runner.
func New(session *editor.Session, runner *diag.Runner, opts ...Option) (*Handler, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if runner == nil {
		return nil, ErrNilRunner
	}

	h := &Handler{
		session:   session,
		runner:    runner,
		parser:    yamlparser.NewParser(yamlparser.WithStrict()),
		diagRate:  1,
		diagBurst: 3,
	}

	for _, apply := range opts {
		apply(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/document", h.getDocument)
	mux.HandleFunc("PUT /api/document", h.putDocument)
	mux.HandleFunc("GET /api/issues", h.getIssues)
	mux.HandleFunc("GET /api/preview", h.getPreview)
	mux.HandleFunc("POST /api/export", h.postExport)
	mux.HandleFunc("POST /api/copy", h.postCopy)
	mux.Handle("POST /api/diagnostics",
		middleware.Throttle(h.diagRate, h.diagBurst)(http.HandlerFunc(h.postDiagnostics)))

	h.handler = middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.LocalOrigin(middleware.WithAllowedHosts(h.allowedHosts...)),
		middleware.MaxRequestSize(file.MaxDraftSize),
		middleware.Timeout(RequestTimeout),
	)

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) getDocument(w http.ResponseWriter, _ *http.Request) {
	out, err := yaml.MarshalWithOptions(h.session.Document(), yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		middleware.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("encoding draft: %v", err))

		return
	}

	writeYAML(w, out)
}

func (h *Handler) putDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.WriteError(w, http.StatusRequestEntityTooLarge, "draft too large")

			return
		}

		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("reading draft: %v", err))

		return
	}

	load := config.Provider(&schema.Document{}, "", config.WithoutValidation())

	doc, err := load(h.parser, config.StaticFetcher(body))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())

		return
	}

	h.session.Replace(doc)

	issues := schema.Validate(doc)

	slog.Debug("draft replaced", "groups", len(doc.Groups), "issues", len(issues))

	writeJSON(w, http.StatusOK, newIssuesResponse(issues))
}

func (h *Handler) getIssues(w http.ResponseWriter, r *http.Request) {
	issues := h.session.Issues()

	if raw := r.URL.Query().Get("group"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 {
			middleware.WriteError(w, http.StatusBadRequest, "group must be a non-negative index")

			return
		}

		issues = issues.ForGroup(idx)
	}

	writeJSON(w, http.StatusOK, newIssuesResponse(issues))
}

func (h *Handler) getPreview(w http.ResponseWriter, _ *http.Request) {
	out, _, err := h.session.Preview()
	if err != nil {
		writeSessionError(w, err)

		return
	}

	writeYAML(w, out)
}

func (h *Handler) postExport(w http.ResponseWriter, r *http.Request) {
	res, err := h.session.Export(r.Context())
	if err != nil {
		writeSessionError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) postCopy(w http.ResponseWriter, r *http.Request) {
	err := h.session.Copy(r.Context())
	if err != nil {
		writeSessionError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) postDiagnostics(w http.ResponseWriter, r *http.Request) {
	var req diag.Request

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))

		return
	}

	if limit := int(MaxDiagnosticTimeout / time.Millisecond); req.TimeoutMs > limit {
		req.TimeoutMs = limit
	}

	writeJSON(w, http.StatusOK, h.runner.Run(r.Context(), req))
}

// writeSessionError maps editor errors to statuses. An invalid document
// answers 422 with its issues.
func writeSessionError(w http.ResponseWriter, err error) {
	var validationErr *schema.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, newIssuesResponse(validationErr.Issues))
	case errors.Is(err, editor.ErrBusy):
		middleware.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, editor.ErrNoSaver), errors.Is(err, editor.ErrNoClipboard):
		middleware.WriteError(w, http.StatusNotImplemented, err.Error())
	default:
		slog.Error("bridge action failed", "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeYAML(w http.ResponseWriter, out []byte) {
	w.Header().Set("Content-Type", ContentTypeYAML)
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(out)
}

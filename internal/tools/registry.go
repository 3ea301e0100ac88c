package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/palisade-org/palisade/internal/domain"
)

// Handler processes one tool invocation. Input is the raw JSON request body;
// the returned value is serialized as the response body.
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Registry maps tool names to handlers and serves them over HTTP as
// POST /tools/<name>. Failures cross the boundary as a structured envelope:
//
//	{"error": {"code": "...", "message": "...", "details": {...}}}
type Registry struct {
	log *slog.Logger

	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		handlers: make(map[string]Handler),
	}
}

// Register adds a named handler. Re-registering a name replaces the handler.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Names lists the registered tools in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs a tool by name. Unknown names report NotFound.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.Errorf(domain.ErrNotFound, "unknown tool %q", name)
	}
	return h(ctx, input)
}

func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name, ok := strings.CutPrefix(req.URL.Path, "/tools/")
	if !ok || name == "" || strings.Contains(name, "/") {
		writeError(w, domain.Errorf(domain.ErrNotFound, "no tool at %s", req.URL.Path))
		return
	}
	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		writeJSON(w, errorEnvelope{Error: errorBody{
			Code:    string(domain.ErrValidation),
			Message: "tool invocations must be POST requests",
		}})
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, domain.WrapError(domain.ErrValidation, err, "failed to read request body"))
		return
	}
	var input json.RawMessage
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if !json.Valid(trimmed) {
			writeError(w, domain.NewError(domain.ErrValidation, "request body is not valid JSON"))
			return
		}
		input = trimmed
	}

	result, err := r.Invoke(req.Context(), name, input)
	if err != nil {
		r.log.Debug("tool invocation failed", "tool", name, "code", domain.CodeOf(err), "err", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, result)
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	body := errorBody{
		Code:    string(domain.CodeOf(err)),
		Message: err.Error(),
	}
	var de *domain.Error
	if errors.As(err, &de) {
		body.Message = de.Message
		body.Details = de.Details
	}
	if body.Code == "" {
		body.Code = "InternalError"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(domain.CodeOf(err)))
	writeJSON(w, errorEnvelope{Error: body})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrValidation, domain.ErrNetworkNotSupported, domain.ErrArtifactsNotFound,
		domain.ErrUnauthorizedSigner, domain.ErrDuplicateSignature, domain.ErrInvalidSignature,
		domain.ErrAlreadyExecuted, domain.ErrInsufficientBalance:
		return http.StatusBadRequest
	case domain.ErrNetwork, domain.ErrSimulationFailed, domain.ErrConfirmationTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(value)
}

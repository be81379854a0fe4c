package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"fundgraph/internal/archive"
	"fundgraph/internal/codec"
	"fundgraph/internal/domain"
	"fundgraph/internal/service"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; fund submissions are tiny
const maxBodyBytes = 64 << 10

// FundHandler handles fund graph API requests
type FundHandler struct {
	session *service.Session
	logger  *zap.Logger
}

// NewFundHandler creates a new fund handler
func NewFundHandler(session *service.Session, logger *zap.Logger) *FundHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FundHandler{session: session, logger: logger}
}

// Register mounts the API routes on mux
func (h *FundHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/graph", h.GetGraph)
	mux.HandleFunc("GET /api/stats", h.GetStats)

	mux.HandleFunc("GET /api/funds", h.ListFunds)
	mux.HandleFunc("POST /api/funds", h.CreateFund)

	mux.HandleFunc("GET /api/view", h.GetView)
	mux.HandleFunc("PUT /api/view", h.SetView)

	mux.HandleFunc("GET /api/links/{attribute}", h.GetLinks)

	mux.HandleFunc("GET /api/export/{format}", h.Export)
}

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationResponse carries per-field errors so the form can highlight inputs
type ValidationResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

// ViewRequest selects the connecting attribute
type ViewRequest struct {
	Attribute string `json:"attribute"`
}

// ViewResponse reports the connecting attribute
type ViewResponse struct {
	Attribute string `json:"attribute"`
	Selected  bool   `json:"selected"`
}

// Health reports liveness
func (h *FundHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// GetGraph returns the nodes and the active links for rendering
func (h *FundHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.session.Snapshot(), http.StatusOK)
}

// GetStats returns node and link counts
func (h *FundHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.session.Stats(), http.StatusOK)
}

// ListFunds returns every fund in insertion order
func (h *FundHandler) ListFunds(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.session.Nodes(), http.StatusOK)
}

// CreateFund handles a fund form submission
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var candidate domain.Candidate
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&candidate); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	fund, err := h.session.AddFund(candidate)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.writeJSON(w, ValidationResponse{Error: "Validation failed", Fields: verr.Fields}, http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to add fund", zap.Error(err))
		h.writeError(w, "Failed to add fund", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, fund, http.StatusCreated)
}

// GetView returns the active connecting attribute
func (h *FundHandler) GetView(w http.ResponseWriter, r *http.Request) {
	attr, ok := h.session.ActiveAttribute()
	h.writeJSON(w, ViewResponse{Attribute: string(attr), Selected: ok}, http.StatusOK)
}

// SetView switches the connecting attribute and returns the new snapshot
func (h *FundHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	attr, err := domain.ParseAttribute(req.Attribute)
	if err != nil {
		h.writeError(w, "Invalid attribute", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.session.SelectView(attr), http.StatusOK)
}

// GetLinks returns the cached links for one attribute regardless of the active view
func (h *FundHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	attr, err := domain.ParseAttribute(r.PathValue("attribute"))
	if err != nil {
		h.writeError(w, "Invalid attribute", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.session.Links(attr), http.StatusOK)
}

// Export downloads the whole graph as json, yaml or sqlite
func (h *FundHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	graph := h.session.Export()

	if format == "sqlite" {
		h.exportSQLite(w, r, graph)
		return
	}

	exporter, ok := codec.ForFormat(format)
	if !ok {
		h.writeError(w, "Unsupported format", fmt.Sprintf("unknown export format %q", format), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename=funds."+exporter.Format())
	if err := exporter.Export(graph, w); err != nil {
		h.logger.Error("failed to export graph", zap.String("format", format), zap.Error(err))
		// Can't write error response as we already started the body
	}
}

func (h *FundHandler) exportSQLite(w http.ResponseWriter, r *http.Request, graph *domain.GraphExport) {
	tmp, err := os.CreateTemp("", "fundgraph-*.db")
	if err != nil {
		h.writeError(w, "Failed to export", err.Error(), http.StatusInternalServerError)
		return
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := archive.WriteFile(r.Context(), path, graph); err != nil {
		h.logger.Error("failed to write sqlite archive", zap.Error(err))
		h.writeError(w, "Failed to export", err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.writeError(w, "Failed to export", err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.sqlite3")
	w.Header().Set("Content-Disposition", "attachment; filename=funds.db")
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Error("failed to stream sqlite archive", zap.Error(err))
	}
}

// Helper methods

func (h *FundHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON", zap.Error(err))
	}
}

func (h *FundHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	h.writeJSON(w, ErrorResponse{Error: error, Details: details}, statusCode)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pathtree/internal/contextutil"
	"pathtree/internal/pathtree"
	"pathtree/internal/service"
)

// NodeHandler serves the node collection and the per-node views.
type NodeHandler struct {
	tree   service.TreeService
	logger *slog.Logger
}

// NewNodeHandler creates a new NodeHandler.
func NewNodeHandler(tree service.TreeService) *NodeHandler {
	return &NodeHandler{
		tree:   tree,
		logger: slog.Default(),
	}
}

// NodeResponse is the JSON form of a node.
type NodeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Segment    string    `json:"segment"`
	Path       string    `json:"path"`
	ParentPath string    `json:"parent_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BranchResponse is a node with its nested children.
type BranchResponse struct {
	NodeResponse
	Children []BranchResponse `json:"children"`
}

// CreateNodeRequest is the POST /api/nodes payload.
type CreateNodeRequest struct {
	Name       string `json:"name"`
	Segment    string `json:"segment,omitempty"`
	ParentPath string `json:"parent_path,omitempty"`
}

// UpdateNodeRequest is the PATCH /api/nodes/{path} payload. MakeRoot moves
// the node to the top level and wins over ParentPath.
type UpdateNodeRequest struct {
	Name       *string `json:"name,omitempty"`
	Segment    *string `json:"segment,omitempty"`
	ParentPath *string `json:"parent_path,omitempty"`
	MakeRoot   bool    `json:"make_root,omitempty"`
}

// FullNameResponse is the GET /api/nodes/{path}/full-name payload.
type FullNameResponse struct {
	Path     string `json:"path"`
	FullName string `json:"full_name"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *NodeHandler) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return h.logger
}

// ListRoots handles GET /api/nodes.
func (h *NodeHandler) ListRoots(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.tree.Roots(r.Context())
	if err != nil {
		h.handleServiceError(w, r.Context(), err, "Failed to list roots")
		return
	}
	h.writeJSON(w, r.Context(), http.StatusOK, toResponses(nodes))
}

// Create handles POST /api/nodes.
func (h *NodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.getLogger(ctx)

	var req CreateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	node, err := h.tree.Create(ctx, service.CreateNodeRequest{
		Name:       req.Name,
		Segment:    req.Segment,
		ParentPath: req.ParentPath,
	})
	if err != nil {
		h.handleServiceError(w, ctx, err, "Failed to create node")
		return
	}
	h.writeJSON(w, ctx, http.StatusCreated, toResponse(node))
}

// Get handles GET /api/nodes/{path}.
func (h *NodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}
	node, err := h.tree.Get(r.Context(), path)
	if err != nil {
		h.handleServiceError(w, r.Context(), err, "Failed to get node")
		return
	}
	h.writeJSON(w, r.Context(), http.StatusOK, toResponse(node))
}

// Update handles PATCH /api/nodes/{path}.
func (h *NodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}

	var req UpdateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcReq := service.UpdateNodeRequest{
		Name:       req.Name,
		Segment:    req.Segment,
		ParentPath: req.ParentPath,
	}
	if req.MakeRoot {
		root := ""
		svcReq.ParentPath = &root
	}

	node, err := h.tree.Update(ctx, path, svcReq)
	if err != nil {
		h.handleServiceError(w, ctx, err, "Failed to update node")
		return
	}
	h.writeJSON(w, ctx, http.StatusOK, toResponse(node))
}

// Delete handles DELETE /api/nodes/{path}.
func (h *NodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}
	if err := h.tree.Remove(r.Context(), path); err != nil {
		h.handleServiceError(w, r.Context(), err, "Failed to remove node")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Children handles GET /api/nodes/{path}/children.
func (h *NodeHandler) Children(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.tree.Children, "Failed to list children")
}

// Siblings handles GET /api/nodes/{path}/siblings.
func (h *NodeHandler) Siblings(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.tree.Siblings, "Failed to list siblings")
}

// Descendants handles GET /api/nodes/{path}/descendants.
func (h *NodeHandler) Descendants(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.tree.Descendants, "Failed to list descendants")
}

// Ancestors handles GET /api/nodes/{path}/ancestors.
func (h *NodeHandler) Ancestors(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.tree.Ancestors, "Failed to list ancestors")
}

// Branch handles GET /api/nodes/{path}/branch.
func (h *NodeHandler) Branch(w http.ResponseWriter, r *http.Request) {
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}
	branch, err := h.tree.Branch(r.Context(), path)
	if err != nil {
		h.handleServiceError(w, r.Context(), err, "Failed to load branch")
		return
	}
	h.writeJSON(w, r.Context(), http.StatusOK, toBranchResponse(branch.Root))
}

// FullName handles GET /api/nodes/{path}/full-name?separator=&context=.
func (h *NodeHandler) FullName(w http.ResponseWriter, r *http.Request) {
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	name, err := h.tree.FullName(r.Context(), path, pathtree.FullNameOptions{
		Separator: q.Get("separator"),
		Context:   q.Get("context"),
	})
	if err != nil {
		h.handleServiceError(w, r.Context(), err, "Failed to render full name")
		return
	}
	h.writeJSON(w, r.Context(), http.StatusOK, FullNameResponse{Path: path, FullName: name})
}

func (h *NodeHandler) serveList(w http.ResponseWriter, r *http.Request, list func(context.Context, string) ([]pathtree.Node, error), failMsg string) {
	path, ok := h.pathParam(w, r)
	if !ok {
		return
	}
	nodes, err := list(r.Context(), path)
	if err != nil {
		h.handleServiceError(w, r.Context(), err, failMsg)
		return
	}
	h.writeJSON(w, r.Context(), http.StatusOK, toResponses(nodes))
}

// pathParam reads the {path} URL parameter. Paths written with "/" as the
// delimiter arrive percent-encoded.
func (h *NodeHandler) pathParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "path")
	path, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(path) == "" {
		h.getLogger(r.Context()).WarnContext(r.Context(), "invalid path parameter", "path", raw)
		h.writeError(w, http.StatusBadRequest, "Invalid path")
		return "", false
	}
	return path, true
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func (h *NodeHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	writeServiceError(w, h.getLogger(ctx), ctx, err, defaultMsg)
}

func (h *NodeHandler) writeJSON(w http.ResponseWriter, ctx context.Context, status int, body any) {
	writeJSON(w, h.getLogger(ctx), ctx, status, body)
}

func (h *NodeHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	writeError(w, statusCode, message)
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, ctx context.Context, err error, defaultMsg string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "validation failed", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		logger.WarnContext(ctx, "invalid input", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrNotFound):
		logger.InfoContext(ctx, "node not found", "error", err)
		writeError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrConflict):
		logger.WarnContext(ctx, "conflicting write", "error", err)
		writeError(w, http.StatusConflict, "Path or sibling segment already in use")
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, ctx context.Context, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

func toResponse(n pathtree.Node) NodeResponse {
	return NodeResponse{
		ID:         n.ID,
		Name:       n.Name,
		Segment:    n.Segment,
		Path:       n.Path,
		ParentPath: n.ParentPath,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toResponses(nodes []pathtree.Node) []NodeResponse {
	out := make([]NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toResponse(n))
	}
	return out
}

func toBranchResponse(n *pathtree.BranchNode) BranchResponse {
	resp := BranchResponse{
		NodeResponse: toResponse(n.Node),
		Children:     make([]BranchResponse, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		resp.Children = append(resp.Children, toBranchResponse(c))
	}
	return resp
}

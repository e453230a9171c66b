package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"pathtree/internal/contextutil"
	"pathtree/internal/outline"
	"pathtree/internal/service"
)

// maxOutlineBytes caps the Markdown body accepted by ImportHandler.
const maxOutlineBytes = 1 << 20

// ImportHandler turns a Markdown outline into nodes.
type ImportHandler struct {
	tree   service.TreeService
	parser *outline.Parser
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(tree service.TreeService, parser *outline.Parser) *ImportHandler {
	return &ImportHandler{
		tree:   tree,
		parser: parser,
	}
}

// ImportResponse lists the nodes created by an import, parents first.
type ImportResponse struct {
	Created int            `json:"created"`
	Nodes   []NodeResponse `json:"nodes"`
}

// ServeHTTP handles POST /api/import?parent_path=.
func (h *ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOutlineBytes))
	if err != nil {
		logger.WarnContext(ctx, "failed to read outline body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entries := h.parser.Parse(body)
	if len(entries) == 0 {
		writeError(w, http.StatusBadRequest, "Outline has no headings or list items")
		return
	}

	parentPath := r.URL.Query().Get("parent_path")
	nodes, err := h.tree.ImportOutline(ctx, parentPath, entries)
	if err != nil {
		writeServiceError(w, logger, ctx, err, "Failed to import outline")
		return
	}

	logger.InfoContext(ctx, "outline import served", "parent_path", parentPath, slog.Int("created", len(nodes)))
	writeJSON(w, logger, ctx, http.StatusCreated, ImportResponse{
		Created: len(nodes),
		Nodes:   toResponses(nodes),
	})
}

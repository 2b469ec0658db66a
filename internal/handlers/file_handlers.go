package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
)

// FileHandler handles file path routes
type FileHandler struct{}

// NewFileHandler creates a new FileHandler
func NewFileHandler() *FileHandler {
	return &FileHandler{}
}

type filePathResponse struct {
	FilePath string `json:"file_path"`
}

// Read echoes the rest-of-path file parameter, separators included.
func (h *FileHandler) Read(_ context.Context, req *dispatch.Request) (any, error) {
	return filePathResponse{FilePath: req.String("file_path")}, nil
}

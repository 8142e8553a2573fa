package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"campusai-backend/internal/models"
)

type textExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// DocumentHandler turns an uploaded assignment or notice into plain text.
type DocumentHandler struct {
	extractor textExtractor
	maxBytes  int64
}

func NewDocumentHandler(extractor textExtractor, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{extractor: extractor, maxBytes: maxBytes}
}

func (h *DocumentHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("File is too large", r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid multipart form", r))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("File is required", map[string]string{"file": "is required"}, r))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Could not read uploaded file", r))
		return
	}

	text, err := h.extractor.ExtractText(header.Filename, data)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ExtractResponse{
		Success:  true,
		Data:     text,
		Filename: header.Filename,
		Words:    len(strings.Fields(text)),
	})
}

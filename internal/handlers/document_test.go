package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai-backend/internal/services"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestDocumentHandler_ExtractText(t *testing.T) {
	h := NewDocumentHandler(services.NewFileExtractService(), 1<<20)
	rr := httptest.NewRecorder()

	h.Extract(rr, multipartRequest(t, "file", "notice.txt", []byte("Library closes on Friday.\n\nReturn books by Thursday.")))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success  bool   `json:"success"`
		Data     string `json:"data"`
		Filename string `json:"filename"`
		Words    int    `json:"words"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Library closes on Friday.\n\nReturn books by Thursday.", resp.Data)
	assert.Equal(t, "notice.txt", resp.Filename)
	assert.Equal(t, 8, resp.Words)
}

func TestDocumentHandler_Rejects(t *testing.T) {
	h := NewDocumentHandler(services.NewFileExtractService(), 1<<20)

	tests := []struct {
		name     string
		req      func(t *testing.T) *http.Request
		expected int
	}{
		{"missing file", func(t *testing.T) *http.Request { return multipartRequest(t, "", "", nil) }, http.StatusBadRequest},
		{"unsupported type", func(t *testing.T) *http.Request {
			return multipartRequest(t, "file", "slides.pptx", []byte("x"))
		}, http.StatusBadRequest},
		{"not multipart", func(t *testing.T) *http.Request {
			return httptest.NewRequest(http.MethodPost, "/api/documents/extract", bytes.NewReader([]byte(`{"text":"x"}`)))
		}, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Extract(rr, tc.req(t))
			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}

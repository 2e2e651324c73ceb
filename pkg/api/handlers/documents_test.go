package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/api/models"
	"github.com/folio/folio/pkg/documents"
	"github.com/folio/folio/pkg/storage/memory"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj <<>> endobj\ntrailer <<>>\n%%EOF\n")

func newDocumentHandler(t *testing.T, maxSize int64) *DocumentHandler {
	t.Helper()
	records := memory.NewMemoryStorage()
	t.Cleanup(func() { _ = records.Close() })
	store, err := documents.New(records, documents.Config{
		Dir:       t.TempDir(),
		MaxSize:   maxSize,
		OwnerName: "Tunji Dev",
	}, documents.WithLogger(testLogger()))
	require.NoError(t, err)
	return NewDocumentHandler(store, maxSize, testLogger())
}

func uploadRequest(t *testing.T, docType, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("type", docType))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestDocumentHandler_UploadDownloadDelete(t *testing.T) {
	h := newDocumentHandler(t, 1<<20)

	w := httptest.NewRecorder()
	h.Upload(w, uploadRequest(t, "resume", "my-resume.pdf", samplePDF))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var up models.DocumentUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &up))
	assert.Equal(t, models.DocumentUploadResponse{
		Message: "RESUME uploaded successfully", Filename: "my-resume.pdf", Type: "resume",
	}, up)

	w = httptest.NewRecorder()
	h.Current(w, httptest.NewRequest(http.MethodGet, "/api/resume/current", nil))
	assert.JSONEq(t, `{"resume":"resume.pdf","cv":null}`, w.Body.String())

	w = httptest.NewRecorder()
	h.Download(w, withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/resume/download/resume", nil), "type", "resume"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=Tunji_Dev_RESUME.pdf`, w.Header().Get("Content-Disposition"))
	got, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Equal(t, samplePDF, got)

	w = httptest.NewRecorder()
	h.Delete(w, withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/resume/delete/resume", nil), "type", "resume"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"RESUME deleted successfully","type":"resume"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.Download(w, withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/resume/download/resume", nil), "type", "resume"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_UploadRejections(t *testing.T) {
	tests := []struct {
		name       string
		docType    string
		filename   string
		content    []byte
		wantStatus int
		wantMsg    string
	}{
		{"not a pdf name", "cv", "cv.docx", samplePDF, http.StatusBadRequest, "Only PDF files are allowed"},
		{"bad type", "portfolio", "cv.pdf", samplePDF, http.StatusBadRequest, "Type must be 'resume' or 'cv'"},
		{"pdf name but not pdf bytes", "cv", "cv.pdf", []byte("just text"), http.StatusBadRequest, "Only PDF files are allowed"},
		{"too large", "cv", "cv.pdf", append(append([]byte{}, samplePDF...), bytes.Repeat([]byte("x"), 2048)...), http.StatusRequestEntityTooLarge, "File too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newDocumentHandler(t, 1024)
			w := httptest.NewRecorder()
			h.Upload(w, uploadRequest(t, tt.docType, tt.filename, tt.content))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
		})
	}
}

func TestDocumentHandler_UploadRequiresMultipart(t *testing.T) {
	h := newDocumentHandler(t, 1024)
	w := httptest.NewRecorder()
	h.Upload(w, jsonRequest(http.MethodPost, "/api/resume/upload", `{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_InvalidTypeInPath(t *testing.T) {
	h := newDocumentHandler(t, 1024)

	w := httptest.NewRecorder()
	h.Delete(w, withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/resume/delete/photo", nil), "type", "photo"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.Download(w, withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/resume/download/cv", nil), "type", "cv"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CV not found", decodeError(t, w).Message)
}

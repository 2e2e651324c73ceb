package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/folio/folio/pkg/api/models"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/documents"
	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/portfolio"
)

// multipartOverhead is the slack allowed over the file size cap for form
// boundaries and the type field.
const multipartOverhead = 1 << 20

// DocumentStore keeps the resume and CV PDFs.
type DocumentStore interface {
	Upload(ctx context.Context, t portfolio.DocumentType, filename string, r io.Reader) (portfolio.Document, error)
	Open(t portfolio.DocumentType) (*os.File, error)
	Delete(ctx context.Context, t portfolio.DocumentType) error
	Current() documents.Current
	DownloadName(t portfolio.DocumentType) string
}

// DocumentHandler serves /api/resume.
type DocumentHandler struct {
	store   DocumentStore
	maxSize int64
	logger  logger.Logger
}

// NewDocumentHandler creates a document handler. maxSize bounds uploads.
func NewDocumentHandler(store DocumentStore, maxSize int64, log logger.Logger) *DocumentHandler {
	if maxSize <= 0 {
		maxSize = documents.DefaultMaxSize
	}
	return &DocumentHandler{store: store, maxSize: maxSize, logger: log}
}

// Upload handles POST /api/resume/upload
// @Summary Upload the resume or CV
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param type formData string true "resume or cv"
// @Success 200 {object} models.DocumentUploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Router /api/resume/upload [post]
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.HandleError(w, documents.ErrTooLarge, getRequestID(ctx))
			return
		}
		response.HandleError(w, fmt.Errorf("%w: expected multipart form", response.ErrInvalidInput), getRequestID(ctx))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, fmt.Errorf("%w: file is required", response.ErrInvalidInput), getRequestID(ctx))
		return
	}
	defer file.Close()

	docType := portfolio.DocumentType(strings.TrimSpace(r.FormValue("type")))
	doc, err := h.store.Upload(ctx, docType, header.Filename, file)
	if err != nil {
		writeError(w, r, h.logger, "document upload failed", err)
		return
	}

	response.JSON(w, http.StatusOK, models.DocumentUploadResponse{
		Message:  strings.ToUpper(string(doc.Type)) + " uploaded successfully",
		Filename: doc.Filename,
		Type:     string(doc.Type),
	})
}

// Download handles GET /api/resume/download/{type}
// @Summary Download the resume or CV
// @Tags documents
// @Produce application/pdf
// @Param type path string true "resume or cv"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/resume/download/{type} [get]
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	t, err := documents.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err, getRequestID(r.Context()))
		return
	}

	f, err := h.store.Open(t)
	if err != nil {
		writeError(w, r, h.logger, "document open failed", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeError(w, r, h.logger, "document stat failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": h.store.DownloadName(t),
	}))
	http.ServeContent(w, r, "", info.ModTime(), f)
}

// Delete handles DELETE /api/resume/delete/{type}
// @Summary Delete the resume or CV
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param type path string true "resume or cv"
// @Success 200 {object} models.DocumentDeleteResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/resume/delete/{type} [delete]
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := documents.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err, getRequestID(r.Context()))
		return
	}
	if err := h.store.Delete(r.Context(), t); err != nil {
		writeError(w, r, h.logger, "document delete failed", err)
		return
	}
	response.JSON(w, http.StatusOK, models.DocumentDeleteResponse{
		Message: strings.ToUpper(string(t)) + " deleted successfully",
		Type:    string(t),
	})
}

// Current handles GET /api/resume/current
// @Summary Which documents are available
// @Tags documents
// @Produce json
// @Success 200 {object} documents.Current
// @Router /api/resume/current [get]
func (h *DocumentHandler) Current(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.store.Current())
}

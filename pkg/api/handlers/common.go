// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/folio/folio/pkg/api/middleware"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

func getRequestID(ctx context.Context) string {
	if id := middleware.GetRequestID(ctx); id != "" {
		return id
	}
	return "unknown"
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", response.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid request body", response.ErrInvalidInput)
	}
	return nil
}

// bind decodes and validates a JSON body, writing the 400 response itself.
// It reports whether the handler should continue.
func bind(w http.ResponseWriter, r *http.Request, v *validator.Validate, log logger.Logger, dst any) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		log.DebugContext(r.Context(), "request body rejected", "path", r.URL.Path, "error", err)
		response.HandleError(w, err, getRequestID(r.Context()))
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeValidationError(w, r, err)
		return false
	}
	return true
}

func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		response.Error(w, http.StatusBadRequest, response.ErrCodeValidationFailed, err.Error(), getRequestID(r.Context()))
		return
	}

	details := make(map[string]any, len(fieldErrs))
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := describeFieldError(fe)
		details[fe.Field()] = msg
		msgs = append(msgs, fe.Field()+" "+msg)
	}
	response.ErrorWithDetails(w, http.StatusBadRequest, response.ErrCodeValidationFailed,
		strings.Join(msgs, "; "), details, getRequestID(r.Context()))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid e-mail address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// writeError logs server-side failures and renders err through the
// response classifier.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	c := response.Classify(err)
	if c.Status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), msg, "path", r.URL.Path, "error", err)
	}
	response.HandleError(w, err, getRequestID(r.Context()))
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", response.ErrInvalidInput, name)
	}
	return id, nil
}

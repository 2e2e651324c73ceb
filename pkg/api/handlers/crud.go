package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

// crud holds what the generic record endpoints share.
type crud struct {
	logger    logger.Logger
	validator *validator.Validate
}

func serveList[T any](c crud, w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		writeError(w, r, c.logger, "list failed", err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func serveGet[T any](c crud, w http.ResponseWriter, r *http.Request, get func(context.Context, int64) (T, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err, getRequestID(r.Context()))
		return
	}
	item, err := get(r.Context(), id)
	if err != nil {
		writeError(w, r, c.logger, "get failed", err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func serveCreate[In, T any](c crud, w http.ResponseWriter, r *http.Request, create func(context.Context, In) (T, error)) {
	var in In
	if !bind(w, r, c.validator, c.logger, &in) {
		return
	}
	item, err := create(r.Context(), in)
	if err != nil {
		writeError(w, r, c.logger, "create failed", err)
		return
	}
	response.JSON(w, http.StatusCreated, item)
}

func serveUpdate[P, T any](c crud, w http.ResponseWriter, r *http.Request, update func(context.Context, int64, P) (T, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err, getRequestID(r.Context()))
		return
	}
	var patch P
	if !bind(w, r, c.validator, c.logger, &patch) {
		return
	}
	item, err := update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, c.logger, "update failed", err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func serveDelete(c crud, w http.ResponseWriter, r *http.Request, del func(context.Context, int64) error) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err, getRequestID(r.Context()))
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeError(w, r, c.logger, "delete failed", err)
		return
	}
	response.NoContent(w)
}

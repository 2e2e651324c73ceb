package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/portfolio"
	"github.com/folio/folio/pkg/storage/memory"
)

func newContentHandler(t *testing.T) *ContentHandler {
	t.Helper()
	store := memory.NewMemoryStorage()
	t.Cleanup(func() { _ = store.Close() })
	return NewContentHandler(portfolio.NewService(store, portfolio.WithLogger(testLogger())), testLogger())
}

func TestContentHandler_HeroLifecycle(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	h.CreateHero(w, jsonRequest(http.MethodPost, "/api/hero", `{"title":"Hi, I'm Tunji","subtitle":"Backend engineer"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var hero portfolio.Hero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hero))
	assert.Positive(t, hero.ID)

	w = httptest.NewRecorder()
	req := withChiURLParam(jsonRequest(http.MethodPut, "/api/hero/1", `{"subtitle":"Go engineer"}`), "id", "1")
	h.UpdateHero(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hero))
	assert.Equal(t, "Hi, I'm Tunji", hero.Title, "unset fields are kept")
	assert.Equal(t, "Go engineer", hero.Subtitle)

	w = httptest.NewRecorder()
	h.ListHeroes(w, httptest.NewRequest(http.MethodGet, "/api/hero", nil))
	var list []portfolio.Hero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = httptest.NewRecorder()
	h.DeleteHero(w, withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/hero/1", nil), "id", "1"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.GetHero(w, withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/hero/1", nil), "id", "1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Hero with id 1 not found", decodeError(t, w).Message)
}

func TestContentHandler_Validation(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	h.CreateProject(w, jsonRequest(http.MethodPost, "/api/projects", `{"title":"Folio","github":"not a url"}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	got := decodeError(t, w)
	assert.Equal(t, response.ErrCodeValidationFailed, got.Code)
	assert.Equal(t, "is required", got.Details["desc"])
	assert.Equal(t, "must be a valid URL", got.Details["github"])
}

func TestContentHandler_BadID(t *testing.T) {
	h := newContentHandler(t)

	for _, id := range []string{"abc", "0", "-4"} {
		w := httptest.NewRecorder()
		h.GetProject(w, withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil), "id", id))
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestContentHandler_DuplicateSkill(t *testing.T) {
	h := newContentHandler(t)

	body := `{"name":"Go","category":"Languages"}`
	w := httptest.NewRecorder()
	h.CreateSkill(w, jsonRequest(http.MethodPost, "/api/skills", body))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.CreateSkill(w, jsonRequest(http.MethodPost, "/api/skills", body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Skill with this name already exists", decodeError(t, w).Message)
}

func TestContentHandler_AboutAndProjectsNotFound(t *testing.T) {
	h := newContentHandler(t)

	w := httptest.NewRecorder()
	h.UpdateAbout(w, withChiURLParam(jsonRequest(http.MethodPut, "/api/about/9", `{"title":"x"}`), "id", "9"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "About section not found", decodeError(t, w).Message)

	w = httptest.NewRecorder()
	h.DeleteProject(w, withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/projects/9", nil), "id", "9"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", decodeError(t, w).Message)
}

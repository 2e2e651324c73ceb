package handlers

import (
	"context"
	"net/http"

	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/portfolio"
)

// ContentService is the portfolio content the public site renders and the
// admin dashboard edits.
type ContentService interface {
	ListHeroes(ctx context.Context) ([]portfolio.Hero, error)
	GetHero(ctx context.Context, id int64) (portfolio.Hero, error)
	CreateHero(ctx context.Context, in portfolio.HeroInput) (portfolio.Hero, error)
	UpdateHero(ctx context.Context, id int64, patch portfolio.HeroPatch) (portfolio.Hero, error)
	DeleteHero(ctx context.Context, id int64) error

	ListAbout(ctx context.Context) ([]portfolio.About, error)
	GetAbout(ctx context.Context, id int64) (portfolio.About, error)
	CreateAbout(ctx context.Context, in portfolio.AboutInput) (portfolio.About, error)
	UpdateAbout(ctx context.Context, id int64, patch portfolio.AboutPatch) (portfolio.About, error)
	DeleteAbout(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]portfolio.Project, error)
	GetProject(ctx context.Context, id int64) (portfolio.Project, error)
	CreateProject(ctx context.Context, in portfolio.ProjectInput) (portfolio.Project, error)
	UpdateProject(ctx context.Context, id int64, patch portfolio.ProjectPatch) (portfolio.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]portfolio.Skill, error)
	GetSkill(ctx context.Context, id int64) (portfolio.Skill, error)
	CreateSkill(ctx context.Context, in portfolio.SkillInput) (portfolio.Skill, error)
	UpdateSkill(ctx context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

// ContentHandler serves hero, about, projects and skills.
type ContentHandler struct {
	svc ContentService
	crud
}

// NewContentHandler creates a content handler.
func NewContentHandler(svc ContentService, log logger.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, crud: crud{logger: log, validator: newValidator()}}
}

// ListHeroes handles GET /api/hero
// @Summary List hero sections
// @Tags hero
// @Produce json
// @Success 200 {array} portfolio.Hero
// @Router /api/hero [get]
func (h *ContentHandler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	serveList(h.crud, w, r, h.svc.ListHeroes)
}

// GetHero handles GET /api/hero/{id}
// @Summary Get a hero section
// @Tags hero
// @Produce json
// @Param id path int true "Hero id"
// @Success 200 {object} portfolio.Hero
// @Failure 404 {object} response.ErrorResponse
// @Router /api/hero/{id} [get]
func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	serveGet(h.crud, w, r, h.svc.GetHero)
}

// CreateHero handles POST /api/hero
// @Summary Create a hero section
// @Tags hero
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param hero body portfolio.HeroInput true "Hero"
// @Success 201 {object} portfolio.Hero
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/hero [post]
func (h *ContentHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	serveCreate(h.crud, w, r, h.svc.CreateHero)
}

// UpdateHero handles PUT /api/hero/{id}. Only supplied fields change.
// @Summary Update a hero section
// @Tags hero
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Hero id"
// @Param hero body portfolio.HeroPatch true "Fields to change"
// @Success 200 {object} portfolio.Hero
// @Failure 404 {object} response.ErrorResponse
// @Router /api/hero/{id} [put]
func (h *ContentHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h.crud, w, r, h.svc.UpdateHero)
}

// DeleteHero handles DELETE /api/hero/{id}
// @Summary Delete a hero section
// @Tags hero
// @Security BearerAuth
// @Param id path int true "Hero id"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/hero/{id} [delete]
func (h *ContentHandler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	serveDelete(h.crud, w, r, h.svc.DeleteHero)
}

// ListAbout handles GET /api/about
// @Summary List about sections
// @Tags about
// @Produce json
// @Success 200 {array} portfolio.About
// @Router /api/about [get]
func (h *ContentHandler) ListAbout(w http.ResponseWriter, r *http.Request) {
	serveList(h.crud, w, r, h.svc.ListAbout)
}

// GetAbout handles GET /api/about/{id}
func (h *ContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	serveGet(h.crud, w, r, h.svc.GetAbout)
}

// CreateAbout handles POST /api/about
// @Summary Create an about section
// @Tags about
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param about body portfolio.AboutInput true "About"
// @Success 201 {object} portfolio.About
// @Router /api/about [post]
func (h *ContentHandler) CreateAbout(w http.ResponseWriter, r *http.Request) {
	serveCreate(h.crud, w, r, h.svc.CreateAbout)
}

// UpdateAbout handles PUT /api/about/{id}
func (h *ContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h.crud, w, r, h.svc.UpdateAbout)
}

// DeleteAbout handles DELETE /api/about/{id}
func (h *ContentHandler) DeleteAbout(w http.ResponseWriter, r *http.Request) {
	serveDelete(h.crud, w, r, h.svc.DeleteAbout)
}

// ListProjects handles GET /api/projects and /api/projects/manage.
// @Summary List projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} portfolio.Project
// @Router /api/projects [get]
func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	serveList(h.crud, w, r, h.svc.ListProjects)
}

// GetProject handles GET /api/projects/{id}
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} portfolio.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	serveGet(h.crud, w, r, h.svc.GetProject)
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project body portfolio.ProjectInput true "Project"
// @Success 201 {object} portfolio.Project
// @Router /api/projects [post]
func (h *ContentHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	serveCreate(h.crud, w, r, h.svc.CreateProject)
}

// UpdateProject handles PUT /api/projects/{id}
func (h *ContentHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h.crud, w, r, h.svc.UpdateProject)
}

// DeleteProject handles DELETE /api/projects/{id}
func (h *ContentHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	serveDelete(h.crud, w, r, h.svc.DeleteProject)
}

// ListSkills handles GET /api/skills
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} portfolio.Skill
// @Router /api/skills [get]
func (h *ContentHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	serveList(h.crud, w, r, h.svc.ListSkills)
}

// GetSkill handles GET /api/skills/{id}
func (h *ContentHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	serveGet(h.crud, w, r, h.svc.GetSkill)
}

// CreateSkill handles POST /api/skills
// @Summary Create a skill
// @Description Skill names are unique.
// @Tags skills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param skill body portfolio.SkillInput true "Skill"
// @Success 201 {object} portfolio.Skill
// @Failure 409 {object} response.ErrorResponse "Duplicate name"
// @Router /api/skills [post]
func (h *ContentHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	serveCreate(h.crud, w, r, h.svc.CreateSkill)
}

// UpdateSkill handles PUT /api/skills/{id}
func (h *ContentHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h.crud, w, r, h.svc.UpdateSkill)
}

// DeleteSkill handles DELETE /api/skills/{id}
func (h *ContentHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	serveDelete(h.crud, w, r, h.svc.DeleteSkill)
}

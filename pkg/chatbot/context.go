package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ProjectInfo is the project data used for grounding.
type ProjectInfo struct {
	Title  string
	Desc   string
	GitHub string
	Demo   string
}

// SkillInfo is a skill and its category.
type SkillInfo struct {
	Name     string
	Category string
}

// EducationInfo is one education entry.
type EducationInfo struct {
	Institution string
	Degree      string
}

// AboutInfo is the biography section.
type AboutInfo struct {
	Content   string
	Education []EducationInfo
}

// HeroInfo is the headline.
type HeroInfo struct {
	Title    string
	Subtitle string
}

// DocumentInfo describes a downloadable document.
type DocumentInfo struct {
	Type       string
	Filename   string
	UploadedAt time.Time
}

// Source exposes the current portfolio data read-only. About and Hero return
// nil when the section does not exist.
type Source interface {
	Projects(ctx context.Context) ([]ProjectInfo, error)
	Skills(ctx context.Context) ([]SkillInfo, error)
	About(ctx context.Context) (*AboutInfo, error)
	Hero(ctx context.Context) (*HeroInfo, error)
	Documents(ctx context.Context) ([]DocumentInfo, error)
}

// ContextAssembler renders portfolio data into a prompt grounding block.
type ContextAssembler struct {
	source Source
}

// NewContextAssembler creates an assembler over source.
func NewContextAssembler(source Source) *ContextAssembler {
	return &ContextAssembler{source: source}
}

// Build reads every section fresh and joins the non-empty ones. Any read
// error aborts the build.
func (a *ContextAssembler) Build(ctx context.Context) (string, error) {
	if a.source == nil {
		return "", nil
	}

	var parts []string

	projects, err := a.source.Projects(ctx)
	if err != nil {
		return "", fmt.Errorf("read projects: %w", err)
	}
	if len(projects) > 0 {
		parts = append(parts, renderProjects(projects))
	}

	skills, err := a.source.Skills(ctx)
	if err != nil {
		return "", fmt.Errorf("read skills: %w", err)
	}
	if len(skills) > 0 {
		parts = append(parts, renderSkills(skills))
	}

	about, err := a.source.About(ctx)
	if err != nil {
		return "", fmt.Errorf("read about: %w", err)
	}
	if about != nil {
		parts = append(parts, renderAbout(about))
	}

	hero, err := a.source.Hero(ctx)
	if err != nil {
		return "", fmt.Errorf("read hero: %w", err)
	}
	if hero != nil {
		parts = append(parts, fmt.Sprintf("Professional Title: %s\n%s\n", hero.Title, hero.Subtitle))
	}

	docs, err := a.source.Documents(ctx)
	if err != nil {
		return "", fmt.Errorf("read documents: %w", err)
	}
	if len(docs) > 0 {
		parts = append(parts, renderDocuments(docs))
	}

	return strings.Join(parts, "\n"), nil
}

func renderProjects(projects []ProjectInfo) string {
	var sb strings.Builder
	sb.WriteString("Current Projects:\n")
	for _, p := range projects {
		fmt.Fprintf(&sb, "- %s: %s\n", p.Title, p.Desc)
		if p.GitHub != "" {
			fmt.Fprintf(&sb, "  GitHub: %s\n", p.GitHub)
		}
		if p.Demo != "" {
			fmt.Fprintf(&sb, "  Demo: %s\n", p.Demo)
		}
	}
	return sb.String()
}

func renderSkills(skills []SkillInfo) string {
	var order []string
	byCategory := make(map[string][]string)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], s.Name)
	}

	var sb strings.Builder
	sb.WriteString("Skills by Category:\n")
	for _, category := range order {
		fmt.Fprintf(&sb, "- %s: %s\n", category, strings.Join(byCategory[category], ", "))
	}
	return sb.String()
}

func renderAbout(about *AboutInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "About:\n%s\n", about.Content)
	if len(about.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range about.Education {
			fmt.Fprintf(&sb, "- %s at %s\n", e.Degree, e.Institution)
		}
	}
	return sb.String()
}

func renderDocuments(docs []DocumentInfo) string {
	var sb strings.Builder
	sb.WriteString("Available Documents:\n")
	for _, d := range docs {
		fmt.Fprintf(&sb, "- %s: %s (uploaded %s)\n", strings.ToUpper(d.Type), d.Filename, d.UploadedAt.Format(time.DateOnly))
	}
	sb.WriteString("Visitors can download these from the portfolio website.\n")
	return sb.String()
}

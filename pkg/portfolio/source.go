package portfolio

import (
	"context"
	"strings"

	"github.com/folio/folio/pkg/chatbot"
)

// ChatSource adapts the portfolio collections to chatbot.Source.
type ChatSource struct {
	svc *Service
}

// ChatSource returns the read-only view the chatbot grounds its answers on.
func (s *Service) ChatSource() *ChatSource {
	return &ChatSource{svc: s}
}

var _ chatbot.Source = (*ChatSource)(nil)

// Projects returns projects in insertion order.
func (c *ChatSource) Projects(ctx context.Context) ([]chatbot.ProjectInfo, error) {
	projects, err := c.svc.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.ProjectInfo, 0, len(projects))
	for _, p := range projects {
		out = append(out, chatbot.ProjectInfo{Title: p.Title, Desc: p.Desc, GitHub: p.GitHub, Demo: p.Demo})
	}
	return out, nil
}

func (c *ChatSource) Skills(ctx context.Context) ([]chatbot.SkillInfo, error) {
	skills, err := c.svc.skills.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.SkillInfo, 0, len(skills))
	for _, s := range skills {
		out = append(out, chatbot.SkillInfo{Name: s.Name, Category: s.Category})
	}
	return out, nil
}

// About returns the first about section.
func (c *ChatSource) About(ctx context.Context) (*chatbot.AboutInfo, error) {
	a, ok, err := c.svc.abouts.First(ctx)
	if err != nil || !ok {
		return nil, err
	}
	info := &chatbot.AboutInfo{Content: a.Content}
	for _, e := range a.Education {
		info.Education = append(info.Education, chatbot.EducationInfo{Institution: e.Institution, Degree: e.Degree})
	}
	return info, nil
}

// Hero returns the first hero record.
func (c *ChatSource) Hero(ctx context.Context) (*chatbot.HeroInfo, error) {
	h, ok, err := c.svc.heroes.First(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return &chatbot.HeroInfo{Title: h.Title, Subtitle: h.Subtitle}, nil
}

func (c *ChatSource) Documents(ctx context.Context) ([]chatbot.DocumentInfo, error) {
	docs, err := c.svc.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.DocumentInfo, 0, len(docs))
	for _, d := range docs {
		out = append(out, chatbot.DocumentInfo{
			Type:       strings.ToLower(string(d.Type)),
			Filename:   d.Filename,
			UploadedAt: d.UploadedAt,
		})
	}
	return out, nil
}

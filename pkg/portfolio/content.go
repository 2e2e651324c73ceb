package portfolio

import "context"

func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ListHeroes returns every hero record.
func (s *Service) ListHeroes(ctx context.Context) ([]Hero, error) {
	return s.heroes.List(ctx)
}

// GetHero returns one hero record.
func (s *Service) GetHero(ctx context.Context, id int64) (Hero, error) {
	h, err := s.heroes.Get(ctx, id)
	return h, translate(CollectionHero, id, err)
}

// CreateHero stores a new hero record.
func (s *Service) CreateHero(ctx context.Context, in HeroInput) (Hero, error) {
	h, err := s.heroes.Insert(ctx, func(id int64) Hero {
		return Hero{
			ID:                id,
			Title:             in.Title,
			Subtitle:          in.Subtitle,
			ImageURL:          in.ImageURL,
			ViewButtonText:    in.ViewButtonText,
			ContactButtonText: in.ContactButtonText,
		}
	})
	if err != nil {
		return Hero{}, err
	}
	s.contentChanged(CollectionHero, "created", h.ID)
	return h, nil
}

// UpdateHero applies the set fields of patch.
func (s *Service) UpdateHero(ctx context.Context, id int64, patch HeroPatch) (Hero, error) {
	h, err := s.GetHero(ctx, id)
	if err != nil {
		return Hero{}, err
	}

	merge(&h.Title, patch.Title)
	merge(&h.Subtitle, patch.Subtitle)
	merge(&h.ImageURL, patch.ImageURL)
	merge(&h.ViewButtonText, patch.ViewButtonText)
	merge(&h.ContactButtonText, patch.ContactButtonText)

	if err := translate(CollectionHero, id, s.heroes.Update(ctx, id, h)); err != nil {
		return Hero{}, err
	}
	s.contentChanged(CollectionHero, "updated", id)
	return h, nil
}

// DeleteHero removes a hero record.
func (s *Service) DeleteHero(ctx context.Context, id int64) error {
	if err := translate(CollectionHero, id, s.heroes.Delete(ctx, id)); err != nil {
		return err
	}
	s.contentChanged(CollectionHero, "deleted", id)
	return nil
}

// ListAbout returns every about section.
func (s *Service) ListAbout(ctx context.Context) ([]About, error) {
	return s.abouts.List(ctx)
}

// GetAbout returns one about section.
func (s *Service) GetAbout(ctx context.Context, id int64) (About, error) {
	a, err := s.abouts.Get(ctx, id)
	return a, translate(CollectionAbout, id, err)
}

// CreateAbout stores a new about section.
func (s *Service) CreateAbout(ctx context.Context, in AboutInput) (About, error) {
	a, err := s.abouts.Insert(ctx, func(id int64) About {
		return About{
			ID:        id,
			Title:     in.Title,
			Content:   in.Content,
			ImageURL:  in.ImageURL,
			Skills:    nonNil(in.Skills),
			Education: nonNil(in.Education),
		}
	})
	if err != nil {
		return About{}, err
	}
	s.contentChanged(CollectionAbout, "created", a.ID)
	return a, nil
}

// UpdateAbout applies the set fields of patch.
func (s *Service) UpdateAbout(ctx context.Context, id int64, patch AboutPatch) (About, error) {
	a, err := s.GetAbout(ctx, id)
	if err != nil {
		return About{}, err
	}

	merge(&a.Title, patch.Title)
	merge(&a.Content, patch.Content)
	merge(&a.ImageURL, patch.ImageURL)
	merge(&a.Skills, patch.Skills)
	merge(&a.Education, patch.Education)
	a.Skills = nonNil(a.Skills)
	a.Education = nonNil(a.Education)

	if err := translate(CollectionAbout, id, s.abouts.Update(ctx, id, a)); err != nil {
		return About{}, err
	}
	s.contentChanged(CollectionAbout, "updated", id)
	return a, nil
}

// DeleteAbout removes an about section.
func (s *Service) DeleteAbout(ctx context.Context, id int64) error {
	if err := translate(CollectionAbout, id, s.abouts.Delete(ctx, id)); err != nil {
		return err
	}
	s.contentChanged(CollectionAbout, "deleted", id)
	return nil
}

// ListProjects returns projects newest first.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return reverse(projects), nil
}

// GetProject returns one project.
func (s *Service) GetProject(ctx context.Context, id int64) (Project, error) {
	p, err := s.projects.Get(ctx, id)
	return p, translate(CollectionProjects, id, err)
}

// CreateProject stores a new project.
func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (Project, error) {
	now := s.timestamp()
	p, err := s.projects.Insert(ctx, func(id int64) Project {
		return Project{
			ID:        id,
			Title:     in.Title,
			Desc:      in.Desc,
			GitHub:    in.GitHub,
			Demo:      in.Demo,
			CreatedAt: now,
			UpdatedAt: now,
		}
	})
	if err != nil {
		return Project{}, err
	}
	s.contentChanged(CollectionProjects, "created", p.ID)
	return p, nil
}

// UpdateProject applies the set fields of patch and bumps UpdatedAt.
func (s *Service) UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return Project{}, err
	}

	merge(&p.Title, patch.Title)
	merge(&p.Desc, patch.Desc)
	merge(&p.GitHub, patch.GitHub)
	merge(&p.Demo, patch.Demo)
	p.UpdatedAt = s.timestamp()

	if err := translate(CollectionProjects, id, s.projects.Update(ctx, id, p)); err != nil {
		return Project{}, err
	}
	s.contentChanged(CollectionProjects, "updated", id)
	return p, nil
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := translate(CollectionProjects, id, s.projects.Delete(ctx, id)); err != nil {
		return err
	}
	s.contentChanged(CollectionProjects, "deleted", id)
	return nil
}

// ListSkills returns every skill.
func (s *Service) ListSkills(ctx context.Context) ([]Skill, error) {
	return s.skills.List(ctx)
}

// GetSkill returns one skill.
func (s *Service) GetSkill(ctx context.Context, id int64) (Skill, error) {
	sk, err := s.skills.Get(ctx, id)
	return sk, translate(CollectionSkills, id, err)
}

// skillNameTaken reports whether another skill already uses name.
func (s *Service) skillNameTaken(ctx context.Context, name string, except int64) (bool, error) {
	all, err := s.skills.List(ctx)
	if err != nil {
		return false, err
	}
	for _, sk := range all {
		if sk.ID != except && sk.Name == name {
			return true, nil
		}
	}
	return false, nil
}

var errSkillExists = &ConflictError{Message: "Skill with this name already exists"}

// CreateSkill stores a new skill. Names are unique.
func (s *Service) CreateSkill(ctx context.Context, in SkillInput) (Skill, error) {
	s.skillMu.Lock()
	defer s.skillMu.Unlock()

	taken, err := s.skillNameTaken(ctx, in.Name, 0)
	if err != nil {
		return Skill{}, err
	}
	if taken {
		return Skill{}, errSkillExists
	}

	now := s.timestamp()
	sk, err := s.skills.Insert(ctx, func(id int64) Skill {
		return Skill{ID: id, Name: in.Name, Category: in.Category, Icon: in.Icon, CreatedAt: now}
	})
	if err != nil {
		return Skill{}, err
	}
	s.contentChanged(CollectionSkills, "created", sk.ID)
	return sk, nil
}

// UpdateSkill applies the set fields of patch. Renaming onto an existing
// name is a conflict.
func (s *Service) UpdateSkill(ctx context.Context, id int64, patch SkillPatch) (Skill, error) {
	s.skillMu.Lock()
	defer s.skillMu.Unlock()

	sk, err := s.GetSkill(ctx, id)
	if err != nil {
		return Skill{}, err
	}

	if patch.Name != nil && *patch.Name != sk.Name {
		taken, err := s.skillNameTaken(ctx, *patch.Name, id)
		if err != nil {
			return Skill{}, err
		}
		if taken {
			return Skill{}, errSkillExists
		}
	}

	merge(&sk.Name, patch.Name)
	merge(&sk.Category, patch.Category)
	merge(&sk.Icon, patch.Icon)

	if err := translate(CollectionSkills, id, s.skills.Update(ctx, id, sk)); err != nil {
		return Skill{}, err
	}
	s.contentChanged(CollectionSkills, "updated", id)
	return sk, nil
}

// DeleteSkill removes a skill.
func (s *Service) DeleteSkill(ctx context.Context, id int64) error {
	if err := translate(CollectionSkills, id, s.skills.Delete(ctx, id)); err != nil {
		return err
	}
	s.contentChanged(CollectionSkills, "deleted", id)
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package service

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// portfolioServiceImpl is the production implementation of PortfolioService.
type portfolioServiceImpl struct {
	repo repository.PortfolioRepository
	ids  idGenerator
}

// NewPortfolioService creates a PortfolioService backed by the given repository.
func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioServiceImpl{repo: repo}
}

// Get returns the document, lazily creating a defaulted one on first read.
func (s *portfolioServiceImpl) Get(ctx context.Context) (*model.Portfolio, error) {
	p, err := s.repo.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	p = model.DefaultPortfolio()
	if err := s.repo.Create(ctx, p); err != nil {
		// Lost the race against a concurrent first read; the document is
		// there now.
		if errors.Is(err, repository.ErrAlreadyExists) {
			return s.repo.Get(ctx)
		}
		return nil, err
	}
	return p, nil
}

func (s *portfolioServiceImpl) Create(ctx context.Context, p *model.Portfolio) error {
	return s.repo.Create(ctx, p)
}

func (s *portfolioServiceImpl) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx)
}

// mutate loads the document, applies fn and stores the result.
func (s *portfolioServiceImpl) mutate(ctx context.Context, fn func(*model.Portfolio) error) (*model.Portfolio, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *portfolioServiceImpl) UpdateHero(ctx context.Context, patch model.HeroPatch) (*model.Portfolio, error) {
	return s.mutate(ctx, func(p *model.Portfolio) error {
		applyString(&p.Hero.Name, patch.Name)
		applyString(&p.Hero.Role, patch.Role)
		applyString(&p.Hero.Subtitle, patch.Subtitle)
		applyString(&p.Hero.WelcomeMessage, patch.WelcomeMessage)
		applyString(&p.Hero.Image, patch.Image)
		return nil
	})
}

func (s *portfolioServiceImpl) UpdateSkills(ctx context.Context, patch model.SkillsPatch) (*model.Portfolio, error) {
	return s.mutate(ctx, func(p *model.Portfolio) error {
		if len(patch.Frontend) > 0 {
			p.Skills.Frontend = patch.Frontend
		}
		if len(patch.Backend) > 0 {
			p.Skills.Backend = patch.Backend
		}
		if len(patch.Tools) > 0 {
			p.Skills.Tools = patch.Tools
		}
		return nil
	})
}

func (s *portfolioServiceImpl) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.Portfolio, error) {
	return s.mutate(ctx, func(p *model.Portfolio) error {
		applyString(&p.Settings.TabName, patch.TabName)
		applyString(&p.Settings.TabImage, patch.TabImage)
		applyString(&p.Settings.LogoText, patch.LogoText)
		applyString(&p.Settings.CvURL, patch.CvURL)
		if patch.Contact != nil {
			applyString(&p.Settings.Contact.Email, patch.Contact.Email)
			applyString(&p.Settings.Contact.Phone, patch.Contact.Phone)
			applyString(&p.Settings.Contact.Address, patch.Contact.Address)
		}
		if patch.Social != nil {
			applyString(&p.Settings.Social.Github, patch.Social.Github)
			applyString(&p.Settings.Social.Linkedin, patch.Social.Linkedin)
		}
		return nil
	})
}

// applyString overwrites dst when the patch field was supplied.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

func (s *portfolioServiceImpl) AddEducation(ctx context.Context, entry model.Education) ([]model.Education, error) {
	entry.ID = s.ids.Next()
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		p.Education = append(p.Education, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Education, nil
}

func (s *portfolioServiceImpl) UpdateEducation(ctx context.Context, id int64, patch model.EducationPatch) ([]model.Education, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Education {
			if p.Education[i].ID != id {
				continue
			}
			applyString(&p.Education[i].Degree, patch.Degree)
			applyString(&p.Education[i].Institution, patch.Institution)
			applyString(&p.Education[i].Year, patch.Year)
			applyString(&p.Education[i].Description, patch.Description)
			return nil
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Education, nil
}

func (s *portfolioServiceImpl) DeleteEducation(ctx context.Context, id int64) ([]model.Education, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Education {
			if p.Education[i].ID == id {
				p.Education = append(p.Education[:i], p.Education[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Education, nil
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

func (s *portfolioServiceImpl) AddExperience(ctx context.Context, entry model.Experience) ([]model.Experience, error) {
	entry.ID = s.ids.Next()
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		p.Experience = append(p.Experience, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Experience, nil
}

func (s *portfolioServiceImpl) UpdateExperience(ctx context.Context, id int64, patch model.ExperiencePatch) ([]model.Experience, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Experience {
			if p.Experience[i].ID != id {
				continue
			}
			applyString(&p.Experience[i].Title, patch.Title)
			applyString(&p.Experience[i].Company, patch.Company)
			applyString(&p.Experience[i].Period, patch.Period)
			if patch.Responsibilities != nil {
				p.Experience[i].Responsibilities = patch.Responsibilities
			}
			return nil
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Experience, nil
}

func (s *portfolioServiceImpl) DeleteExperience(ctx context.Context, id int64) ([]model.Experience, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Experience {
			if p.Experience[i].ID == id {
				p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Experience, nil
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

func (s *portfolioServiceImpl) AddProject(ctx context.Context, entry model.Project) ([]model.Project, error) {
	entry.ID = s.ids.Next()
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		p.Projects = append(p.Projects, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}

func (s *portfolioServiceImpl) UpdateProject(ctx context.Context, id int64, patch model.ProjectPatch) ([]model.Project, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Projects {
			if p.Projects[i].ID != id {
				continue
			}
			applyString(&p.Projects[i].Title, patch.Title)
			applyString(&p.Projects[i].Description, patch.Description)
			applyString(&p.Projects[i].Image, patch.Image)
			if patch.TechStack != nil {
				p.Projects[i].TechStack = patch.TechStack
			}
			applyString(&p.Projects[i].LiveURL, patch.LiveURL)
			applyString(&p.Projects[i].GithubURL, patch.GithubURL)
			return nil
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}

func (s *portfolioServiceImpl) DeleteProject(ctx context.Context, id int64) ([]model.Project, error) {
	p, err := s.mutate(ctx, func(p *model.Portfolio) error {
		for i := range p.Projects {
			if p.Projects[i].ID == id {
				p.Projects = append(p.Projects[:i], p.Projects[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}

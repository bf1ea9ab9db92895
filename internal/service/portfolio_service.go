package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// PortfolioService defines the business logic for the portfolio document.
//
// The document is read-modify-written per call with no concurrency token;
// concurrent updates race and the last write wins. That matches the store
// contract and is an accepted limitation of the system.
type PortfolioService interface {
	// Get returns the document, creating and persisting a defaulted one if
	// none exists yet. It never fails with not-found.
	Get(ctx context.Context) (*model.Portfolio, error)

	// Create persists p as the document. Fails with
	// repository.ErrAlreadyExists if one is already present.
	Create(ctx context.Context, p *model.Portfolio) error

	// Delete removes the document. Fails with repository.ErrNotFound if
	// none exists.
	Delete(ctx context.Context) error

	// UpdateHero shallow-merges the patch over the stored hero section and
	// returns the full updated document.
	UpdateHero(ctx context.Context, patch model.HeroPatch) (*model.Portfolio, error)

	// UpdateSkills replaces each category for which a non-empty list was
	// supplied and returns the full updated document.
	UpdateSkills(ctx context.Context, patch model.SkillsPatch) (*model.Portfolio, error)

	// UpdateSettings merges the patch over the stored settings, merging the
	// nested contact and social blocks field-wise, and returns the full
	// updated document.
	UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.Portfolio, error)

	// Sub-list mutations. Add assigns a fresh id; update merges the patch
	// over the matching entry; delete removes it. Update and delete fail
	// with repository.ErrNotFound when no entry has the given id. Each
	// returns the entire updated list.
	AddEducation(ctx context.Context, entry model.Education) ([]model.Education, error)
	UpdateEducation(ctx context.Context, id int64, patch model.EducationPatch) ([]model.Education, error)
	DeleteEducation(ctx context.Context, id int64) ([]model.Education, error)

	AddExperience(ctx context.Context, entry model.Experience) ([]model.Experience, error)
	UpdateExperience(ctx context.Context, id int64, patch model.ExperiencePatch) ([]model.Experience, error)
	DeleteExperience(ctx context.Context, id int64) ([]model.Experience, error)

	AddProject(ctx context.Context, entry model.Project) ([]model.Project, error)
	UpdateProject(ctx context.Context, id int64, patch model.ProjectPatch) ([]model.Project, error)
	DeleteProject(ctx context.Context, id int64) ([]model.Project, error)
}

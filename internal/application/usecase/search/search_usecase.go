package search

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/search"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

const (
	minQueryLength       = 2
	defaultAdvancedLimit = 20
)

// Fixed per-source category labels in the uniform result shape.
const (
	categoryProfile = "Profile Information"
	categoryProject = "Project"
	categoryWork    = "Work Experience"
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: sr,
		logger:     log,
	}
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Query   string
	Results []search.Result
}

// Execute runs the unfiltered search: all four sources, merged and
// relevance-ranked.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query, err := normalizeQuery(input.Query)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Executing search", zap.String("query", query))

	results, err := uc.collect(ctx, query, "", "")
	if err != nil {
		return nil, err
	}

	rank(results, query)
	return &SearchOutput{Query: query, Results: results}, nil
}

type AdvancedSearchInput struct {
	Query    string
	Type     string
	Category string
	Limit    int
}

type AdvancedSearchOutput struct {
	Query   string
	Results []search.Result
}

// ExecuteAdvanced runs the filtered variant: fan-out restricted by type, skill
// matches optionally restricted to a category, and the concatenation truncated
// to the limit. Results keep per-source order; unlike Execute, no relevance
// sort is applied.
func (uc *SearchUseCase) ExecuteAdvanced(ctx context.Context, input AdvancedSearchInput) (*AdvancedSearchOutput, error) {
	query, err := normalizeQuery(input.Query)
	if err != nil {
		return nil, err
	}
	if input.Type != "" && !search.ValidType(input.Type) {
		return nil, apperror.NewInvalidInput("Type must be one of: profile, skill, project, work", nil)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultAdvancedLimit
	}

	uc.logger.Info("Executing advanced search",
		zap.String("query", query), zap.String("type", input.Type), zap.String("category", input.Category))

	results, err := uc.collect(ctx, query, input.Type, input.Category)
	if err != nil {
		return nil, err
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return &AdvancedSearchOutput{Query: query, Results: results}, nil
}

func normalizeQuery(raw string) (string, error) {
	query := strings.TrimSpace(raw)
	if len(query) < minQueryLength {
		return "", apperror.NewInvalidInput("Search query must be at least 2 characters long", nil)
	}
	return query, nil
}

// collect fans out to the sources selected by typeFilter (empty means all
// four) in fixed order: profile, skill, project, work. Each source is an
// independent read; a fault in any one aborts the whole search.
func (uc *SearchUseCase) collect(ctx context.Context, query, typeFilter, category string) ([]search.Result, error) {
	results := make([]search.Result, 0)

	if typeFilter == "" || typeFilter == search.TypeProfile {
		profiles, err := uc.searchRepo.SearchProfiles(ctx, query)
		if err != nil {
			return nil, uc.fail(err)
		}
		for _, p := range profiles {
			results = append(results, projectProfile(p))
		}
	}

	if typeFilter == "" || typeFilter == search.TypeSkill {
		skills, err := uc.searchRepo.SearchSkills(ctx, query, category)
		if err != nil {
			return nil, uc.fail(err)
		}
		for _, s := range skills {
			results = append(results, projectSkill(s))
		}
	}

	if typeFilter == "" || typeFilter == search.TypeProject {
		projects, err := uc.searchRepo.SearchProjects(ctx, query)
		if err != nil {
			return nil, uc.fail(err)
		}
		for _, p := range projects {
			results = append(results, projectProject(p))
		}
	}

	if typeFilter == "" || typeFilter == search.TypeWork {
		experiences, err := uc.searchRepo.SearchExperiences(ctx, query)
		if err != nil {
			return nil, uc.fail(err)
		}
		for _, w := range experiences {
			results = append(results, projectExperience(w))
		}
	}

	return results, nil
}

func (uc *SearchUseCase) fail(err error) error {
	uc.logger.Error("Search source query failed", err)
	return apperror.NewInternal("Failed to perform search", err)
}

// rank orders results by relevance: titles equal to the query (ignoring case)
// first, then by ascending position of the query within the lowercased title.
// A result matched on a non-title field has position -1 and therefore sorts
// ahead of in-title matches; ties keep per-source insertion order.
func rank(results []search.Result, query string) {
	q := strings.ToLower(query)
	sort.SliceStable(results, func(i, j int) bool {
		ti := strings.ToLower(results[i].Title)
		tj := strings.ToLower(results[j].Title)

		iExact := ti == q
		jExact := tj == q
		if iExact != jExact {
			return iExact
		}
		return strings.Index(ti, q) < strings.Index(tj, q)
	})
}

func categoryRef(label string) *string {
	return &label
}

func projectProfile(p profile.Profile) search.Result {
	return search.Result{
		Type:        search.TypeProfile,
		Title:       p.Name,
		Description: p.Email,
		Category:    categoryRef(categoryProfile),
		ID:          p.ID,
	}
}

// A skill without a category keeps it nil, so the envelope carries null the
// way the source row does.
func projectSkill(s skill.Skill) search.Result {
	return search.Result{
		Type:        search.TypeSkill,
		Title:       s.Name,
		Description: skill.ProficiencyLabel(s.Proficiency),
		Category:    s.Category,
		ID:          s.ID,
	}
}

func projectProject(p project.Project) search.Result {
	return search.Result{
		Type:        search.TypeProject,
		Title:       p.Title,
		Description: p.Description,
		Category:    categoryRef(categoryProject),
		ID:          p.ID,
	}
}

func projectExperience(w experience.WorkExperience) search.Result {
	description := ""
	if w.Description != nil {
		description = *w.Description
	}
	return search.Result{
		Type:        search.TypeWork,
		Title:       w.Position,
		Description: w.Company + " - " + description,
		Category:    categoryRef(categoryWork),
		ID:          w.ID,
	}
}

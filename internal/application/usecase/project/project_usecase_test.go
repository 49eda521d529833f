package project

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

// fakeProjectStore backs both the project and skill repositories so the
// association plumbing between them can be exercised end to end.
type fakeProjectStore struct {
	projects      map[int64]*project.Project
	skillsByName  map[string]int64
	associations  map[int64][]int64
	nextProjectID int64
}

func newFakeProjectStore(skillNames ...string) *fakeProjectStore {
	s := &fakeProjectStore{
		projects:      map[int64]*project.Project{},
		skillsByName:  map[string]int64{},
		associations:  map[int64][]int64{},
		nextProjectID: 1,
	}
	for i, name := range skillNames {
		s.skillsByName[name] = int64(i + 1)
	}
	return s
}

// project.Repository

func (s *fakeProjectStore) List(ctx context.Context, skillFilter string) ([]project.Project, error) {
	var out []project.Project
	for id := range s.projects {
		p := s.snapshot(id)
		if skillFilter != "" {
			keep := false
			for _, name := range p.Skills {
				if strings.Contains(name, skillFilter) {
					keep = true
				}
			}
			if !keep {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProjectStore) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	if _, ok := s.projects[id]; !ok {
		return nil, apperror.NewNotFound("project", fmt.Sprint(id))
	}
	return s.snapshot(id), nil
}

func (s *fakeProjectStore) Create(ctx context.Context, p *project.Project) error {
	p.ID = s.nextProjectID
	s.nextProjectID++
	clone := *p
	s.projects[p.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Update(ctx context.Context, p *project.Project) error {
	if _, ok := s.projects[p.ID]; !ok {
		return apperror.NewNotFound("project", fmt.Sprint(p.ID))
	}
	clone := *p
	s.projects[p.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.projects[id]; !ok {
		return apperror.NewNotFound("project", fmt.Sprint(id))
	}
	delete(s.projects, id)
	delete(s.associations, id)
	return nil
}

func (s *fakeProjectStore) ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error {
	s.associations[projectID] = append([]int64(nil), skillIDs...)
	return nil
}

// snapshot materializes the project with its associated skill names resolved,
// the way the SQL join does.
func (s *fakeProjectStore) snapshot(id int64) *project.Project {
	clone := *s.projects[id]
	clone.Skills = nil
	for name, skillID := range s.skillsByName {
		for _, assoc := range s.associations[id] {
			if assoc == skillID {
				clone.Skills = append(clone.Skills, name)
			}
		}
	}
	sort.Strings(clone.Skills)
	return &clone
}

// skill.Repository (only the name resolution is used by these use cases)

func (s *fakeProjectStore) FindIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	var ids []int64
	for _, name := range names {
		if id, ok := s.skillsByName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeProjectStore) Top(ctx context.Context, limit int, category string) ([]skill.Skill, error) {
	return nil, nil
}
func (s *fakeProjectStore) Categories(ctx context.Context) ([]skill.CategoryCount, error) {
	return nil, nil
}
func (s *fakeProjectStore) FindByName(ctx context.Context, name string) (*skill.Skill, error) {
	return nil, apperror.NewNotFound("skill", "")
}

type fakeSkillLookup struct {
	*fakeProjectStore
}

func (f fakeSkillLookup) List(ctx context.Context) ([]skill.Skill, error) { return nil, nil }
func (f fakeSkillLookup) FindByID(ctx context.Context, id int64) (*skill.Skill, error) {
	return nil, apperror.NewNotFound("skill", fmt.Sprint(id))
}
func (f fakeSkillLookup) Create(ctx context.Context, sk *skill.Skill) error { return nil }
func (f fakeSkillLookup) Update(ctx context.Context, sk *skill.Skill) error { return nil }
func (f fakeSkillLookup) Delete(ctx context.Context, id int64) error        { return nil }

func TestCreateProject_RequiresTitleAndDescription(t *testing.T) {
	store := newFakeProjectStore()
	uc := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Title: "  ", Description: "desc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = uc.Execute(context.Background(), CreateProjectInput{Title: "Title", Description: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestCreateProject_UnknownSkillNamesAreDropped(t *testing.T) {
	store := newFakeProjectStore("Go", "React")
	uc := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Title:       "Portfolio Website",
		Description: "A small site.",
		Skills:      []string{"Go", "Cobol", "React"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "React"}, out.Project.Skills)
}

func TestCreateProject_NoSkillsGiven(t *testing.T) {
	store := newFakeProjectStore("Go")
	uc := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Title: "Portfolio Website", Description: "A small site.",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Project.Skills)
}

func TestUpdateProject_OmittedSkillsLeaveAssociationsUntouched(t *testing.T) {
	store := newFakeProjectStore("Go", "React")
	create := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())
	update := NewUpdateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	created, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "Tracker", Description: "Tracks things.", Skills: []string{"Go"},
	})
	require.NoError(t, err)

	out, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.Project.ID, Title: "Tracker v2", Description: "Tracks more things.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Tracker v2", out.Project.Title)
	assert.Equal(t, []string{"Go"}, out.Project.Skills)
}

func TestUpdateProject_EmptySkillListClearsAssociations(t *testing.T) {
	store := newFakeProjectStore("Go", "React")
	create := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())
	update := NewUpdateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	created, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "Tracker", Description: "Tracks things.", Skills: []string{"Go", "React"},
	})
	require.NoError(t, err)

	out, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.Project.ID, Title: "Tracker", Description: "Tracks things.",
		Skills: nil, ReplaceSkills: true,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Project.Skills)
}

func TestUpdateProject_ReplacesSkillSet(t *testing.T) {
	store := newFakeProjectStore("Go", "React", "SQL")
	create := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())
	update := NewUpdateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	created, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "Tracker", Description: "Tracks things.", Skills: []string{"Go"},
	})
	require.NoError(t, err)

	out, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.Project.ID, Title: "Tracker", Description: "Tracks things.",
		Skills: []string{"React", "SQL"}, ReplaceSkills: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "SQL"}, out.Project.Skills)
}

func TestUpdateProject_Missing(t *testing.T) {
	store := newFakeProjectStore()
	update := NewUpdateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())

	_, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: 99, Title: "Tracker", Description: "Tracks things.",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteProject(t *testing.T) {
	store := newFakeProjectStore("Go")
	create := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())
	del := NewDeleteProjectUseCase(store, nil, logger.NewNop())
	get := NewGetProjectUseCase(store)

	created, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "Tracker", Description: "Tracks things.", Skills: []string{"Go"},
	})
	require.NoError(t, err)

	require.NoError(t, del.Execute(context.Background(), created.Project.ID))

	_, err = get.Execute(context.Background(), created.Project.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = del.Execute(context.Background(), created.Project.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListProjects_SkillFilter(t *testing.T) {
	store := newFakeProjectStore("Go", "React")
	create := NewCreateProjectUseCase(store, fakeSkillLookup{store}, nil, logger.NewNop())
	list := NewListProjectsUseCase(store)

	_, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "API", Description: "An API.", Skills: []string{"Go"},
	})
	require.NoError(t, err)
	_, err = create.Execute(context.Background(), CreateProjectInput{
		Title: "SPA", Description: "A SPA.", Skills: []string{"React"},
	})
	require.NoError(t, err)

	all, err := list.Execute(context.Background(), ListProjectsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := list.Execute(context.Background(), ListProjectsInput{SkillFilter: "Go"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "API", filtered[0].Title)
}

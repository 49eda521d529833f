package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/search"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type PortfolioRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger

	profileRepo    profile.Repository
	skillRepo      skill.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	searchRepo     search.Repository
}

func (s *PortfolioRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	if err := InitSchema(ctx, s.dbPool, s.testLogger); err != nil {
		s.T().Fatalf("Failed to init schema: %s", err)
	}

	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.searchRepo = NewPostgresSearchRepo(s.dbPool, s.testLogger)
}

func (s *PortfolioRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

// Every test starts from empty tables.
func (s *PortfolioRepoIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"project_skills", "projects", "skills", "work_experience", "profile"} {
		_, err := s.dbPool.Exec(ctx, "DELETE FROM "+table)
		s.Require().NoError(err)
	}
}

func TestPortfolioRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PortfolioRepoIntegrationTestSuite))
}

func (s *PortfolioRepoIntegrationTestSuite) seedSkill(name string, proficiency int, category string) *skill.Skill {
	sk := &skill.Skill{Name: name, Proficiency: proficiency, Category: &category}
	s.Require().NoError(s.skillRepo.Create(context.Background(), sk))
	return sk
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Profile_RoundTrip() {
	ctx := context.Background()

	_, err := s.profileRepo.Get(ctx)
	s.ErrorIs(err, apperror.ErrNotFound)

	education := "BSc Computer Science"
	p := &profile.Profile{Name: "John Doe", Email: "john.doe@example.com", Education: &education}
	s.NoError(s.profileRepo.Create(ctx, p))
	s.NotZero(p.ID)
	s.False(p.CreatedAt.IsZero())

	found, err := s.profileRepo.Get(ctx)
	s.NoError(err)
	s.Equal("John Doe", found.Name)
	s.Require().NotNil(found.Education)
	s.Equal(education, *found.Education)

	found.Name = "John D."
	s.NoError(s.profileRepo.Update(ctx, found))

	updated, err := s.profileRepo.Get(ctx)
	s.NoError(err)
	s.Equal("John D.", updated.Name)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Profile_DuplicateEmail() {
	ctx := context.Background()

	s.NoError(s.profileRepo.Create(ctx, &profile.Profile{Name: "John", Email: "dup@example.com"}))

	err := s.profileRepo.Create(ctx, &profile.Profile{Name: "Jane", Email: "dup@example.com"})
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skill_CRUD_And_Queries() {
	ctx := context.Background()

	s.seedSkill("Go", 5, "Backend")
	s.seedSkill("React", 4, "Frontend")
	s.seedSkill("Docker", 3, "DevOps")
	s.seedSkill("Python", 4, "Backend")

	all, err := s.skillRepo.List(ctx)
	s.NoError(err)
	s.Require().Len(all, 4)
	// Ordered by proficiency descending, then name.
	s.Equal("Go", all[0].Name)

	top, err := s.skillRepo.Top(ctx, 10, "")
	s.NoError(err)
	s.Len(top, 3)

	topBackend, err := s.skillRepo.Top(ctx, 10, "Backend")
	s.NoError(err)
	s.Len(topBackend, 2)

	categories, err := s.skillRepo.Categories(ctx)
	s.NoError(err)
	s.Len(categories, 3)
	for _, c := range categories {
		if c.Category == "Backend" {
			s.Equal(int64(2), c.SkillCount)
		}
	}

	byName, err := s.skillRepo.FindByName(ctx, "Go")
	s.NoError(err)
	s.Equal(5, byName.Proficiency)

	duplicate := &skill.Skill{Name: "Go", Proficiency: 1}
	s.ErrorIs(s.skillRepo.Create(ctx, duplicate), apperror.ErrConflict)

	byName.Proficiency = 4
	s.NoError(s.skillRepo.Update(ctx, byName))

	s.NoError(s.skillRepo.Delete(ctx, byName.ID))
	_, err = s.skillRepo.FindByID(ctx, byName.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
	s.ErrorIs(s.skillRepo.Delete(ctx, byName.ID), apperror.ErrNotFound)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skill_FindIDsByNames_DropsUnknown() {
	ctx := context.Background()

	a := s.seedSkill("Go", 5, "Backend")
	b := s.seedSkill("React", 4, "Frontend")

	ids, err := s.skillRepo.FindIDsByNames(ctx, []string{"Go", "Cobol", "React"})
	s.NoError(err)
	s.ElementsMatch([]int64{a.ID, b.ID}, ids)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Project_Associations() {
	ctx := context.Background()

	goSkill := s.seedSkill("Go", 5, "Backend")
	reactSkill := s.seedSkill("React", 4, "Frontend")

	p := &project.Project{Title: "Tracker", Description: "Tracks things."}
	s.Require().NoError(s.projectRepo.Create(ctx, p))

	s.NoError(s.projectRepo.ReplaceSkills(ctx, p.ID, []int64{goSkill.ID, reactSkill.ID}))

	found, err := s.projectRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.ElementsMatch([]string{"Go", "React"}, found.Skills)

	// Replacement is a full swap.
	s.NoError(s.projectRepo.ReplaceSkills(ctx, p.ID, []int64{reactSkill.ID}))
	found, err = s.projectRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.Equal([]string{"React"}, found.Skills)

	filtered, err := s.projectRepo.List(ctx, "React")
	s.NoError(err)
	s.Len(filtered, 1)

	filtered, err = s.projectRepo.List(ctx, "Go")
	s.NoError(err)
	s.Len(filtered, 0)

	// Deleting the project cascades to the association rows.
	s.NoError(s.projectRepo.Delete(ctx, p.ID))
	var count int
	s.NoError(s.dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM project_skills WHERE project_id = $1", p.ID).Scan(&count))
	s.Equal(0, count)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skill_Delete_Cascades_To_Associations() {
	ctx := context.Background()

	goSkill := s.seedSkill("Go", 5, "Backend")
	reactSkill := s.seedSkill("React", 4, "Frontend")

	p := &project.Project{Title: "Tracker", Description: "Tracks things."}
	s.Require().NoError(s.projectRepo.Create(ctx, p))
	s.Require().NoError(s.projectRepo.ReplaceSkills(ctx, p.ID, []int64{goSkill.ID, reactSkill.ID}))

	s.NoError(s.skillRepo.Delete(ctx, goSkill.ID))

	// The project survives the skill deletion; only the association goes.
	found, err := s.projectRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.Equal([]string{"React"}, found.Skills)

	var count int
	s.NoError(s.dbPool.QueryRow(ctx,
		"SELECT COUNT(*) FROM project_skills WHERE project_id = $1", p.ID).Scan(&count))
	s.Equal(1, count)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Experience_ListOrder() {
	ctx := context.Background()

	older := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.experienceRepo.Create(ctx, &experience.WorkExperience{
		Company: "StartupXYZ", Position: "Junior Developer", StartDate: &older,
	}))
	s.Require().NoError(s.experienceRepo.Create(ctx, &experience.WorkExperience{
		Company: "Tech Solutions Inc.", Position: "Senior Developer", StartDate: &newer, Current: true,
	}))

	all, err := s.experienceRepo.List(ctx)
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Tech Solutions Inc.", all[0].Company)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Search_Sources() {
	ctx := context.Background()

	education := "BSc"
	s.Require().NoError(s.profileRepo.Create(ctx, &profile.Profile{
		Name: "John Doe", Email: "john.doe@example.com", Education: &education,
	}))
	s.seedSkill("React", 5, "Frontend")
	s.Require().NoError(s.projectRepo.Create(ctx, &project.Project{
		Title: "React Native App", Description: "A mobile app.",
	}))
	s.Require().NoError(s.experienceRepo.Create(ctx, &experience.WorkExperience{
		Company: "Reactive Systems", Position: "Developer",
	}))

	// Matching is case-insensitive substring per source.
	profiles, err := s.searchRepo.SearchProfiles(ctx, "JOHN")
	s.NoError(err)
	s.Len(profiles, 1)

	skills, err := s.searchRepo.SearchSkills(ctx, "react", "")
	s.NoError(err)
	s.Len(skills, 1)

	skills, err = s.searchRepo.SearchSkills(ctx, "react", "Backend")
	s.NoError(err)
	s.Len(skills, 0)

	projects, err := s.searchRepo.SearchProjects(ctx, "mobile")
	s.NoError(err)
	s.Len(projects, 1)

	experiences, err := s.searchRepo.SearchExperiences(ctx, "reactive")
	s.NoError(err)
	s.Len(experiences, 1)
}

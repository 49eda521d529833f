package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johndoe/me-api/pkg/apperror"
)

// Request bodies. Required-field checks live in the use cases so the error
// messages stay in one place; binding is shape-only.

type SaveProfileRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Education *string `json:"education"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Portfolio *string `json:"portfolio"`
}

type SaveSkillRequest struct {
	Name        string  `json:"name"`
	Proficiency int     `json:"proficiency"`
	Category    *string `json:"category"`
}

type SaveProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GithubLink  *string `json:"github_link"`
	LiveLink    *string `json:"live_link"`
	// Skills is a pointer so an omitted field can be told apart from an
	// explicit empty list on update.
	Skills *[]string `json:"skills"`
}

type SaveExperienceRequest struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
}

const dateLayout = "2006-01-02"

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperror.NewInvalidInput(field+" must be a date in YYYY-MM-DD format", err)
	}
	return &t, nil
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidInput("id must be a number", err)
	}
	return id, nil
}

package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	searchUC "github.com/johndoe/me-api/internal/application/usecase/search"
	"github.com/johndoe/me-api/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	output, err := h.searchUseCase.Execute(c.Request.Context(), searchUC.SearchInput{
		Query: c.Query("q"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   output.Query,
		"count":   len(output.Results),
		"data":    output.Results,
	})
}

func (h *SearchHandler) SearchAdvanced(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	typeFilter := c.Query("type")
	category := c.Query("category")

	output, err := h.searchUseCase.ExecuteAdvanced(c.Request.Context(), searchUC.AdvancedSearchInput{
		Query:    c.Query("q"),
		Type:     typeFilter,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if typeFilter == "" {
		typeFilter = "all"
	}
	if category == "" {
		category = "all"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"query":    output.Query,
		"type":     typeFilter,
		"category": category,
		"count":    len(output.Results),
		"data":     output.Results,
	})
}

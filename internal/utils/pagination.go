package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskboard/task-user-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page int
	Size int
}

// GetPaginationParams extracts pagination parameters from the request. Pages
// are zero-based; negative values fall back to the defaults. The size is not
// capped.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(constants.DefaultPageSize)))

	if page < 0 {
		page = constants.DefaultPage
	}
	if size < 0 {
		size = constants.DefaultPageSize
	}

	return PaginationParams{
		Page: page,
		Size: size,
	}
}

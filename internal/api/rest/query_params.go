package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/lensport/catalog-sync-v2/internal/api/shared/constants"
)

// ListRunsQueryParams holds query parameters for listing sync runs
type ListRunsQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListRunsQuery parses pagination parameters for the run list
func ParseListRunsQuery(c *gin.Context) (*ListRunsQueryParams, error) {
	var params ListRunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_RUNS_LIMIT
	}
	if params.Offset < 0 {
		params.Offset = constants.DEFAULT_OFFSET
	}

	return &params, nil
}

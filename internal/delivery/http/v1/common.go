package v1

import (
	"strconv"

	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// pathID parses the numeric id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid id parameter")
	}
	return id, nil
}

// pagination reads the skip/limit query parameters with the usual defaults.
func pagination(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}
	return skip, limit
}

// toPtr converts an empty string to a nil pointer.
func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

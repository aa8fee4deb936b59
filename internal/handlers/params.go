package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"melodex/internal/repositories"
)

// pageOptions parses the shared pagination and sorting query parameters
func pageOptions(c *gin.Context) (repositories.PageOptions, error) {
	return repositories.ParsePageOptions(
		c.Query("page"),
		c.Query("limit"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)
}

// queryIntPtr parses an optional integer query parameter. Values that are
// not integers are treated as absent.
func queryIntPtr(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// queryBoolPtr parses an optional boolean query parameter
func queryBoolPtr(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	params := paramsForQuery("")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)

	params = paramsForQuery("page=3&page_size=10")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Limit)

	// limit alias still honored
	params = paramsForQuery("limit=15")
	assert.Equal(t, 15, params.Limit)

	// oversized and invalid values fall back to defaults
	params = paramsForQuery("page=0&page_size=500&order=sideways")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a"}, 41, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Sort)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQueryReadsEverything(t *testing.T) {
	values := url.Values{}
	values.Set("search", "scanner")
	values.Set("sort[created_at]", "DESC")
	values.Set("filter[status]", "operational")
	values.Set("limit", "25")
	values.Set("page", "3")
	values.Set("withPagination", "false")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "scanner", filter.Search)
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "operational", filter.Filter["status"])
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.Offset)
	assert.False(t, filter.WithPagination)
}

func TestParseFilterFromQueryCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "9999")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQueryFoldsRepeatedFilters(t *testing.T) {
	values := url.Values{}
	values.Add("filter[department_id]", "1")
	values.Add("filter[department_id]", "2")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, "1,2", filter.Filter["department_id"])
}

func TestParseFilterFromQueryIgnoresBadSortDirection(t *testing.T) {
	values := url.Values{}
	values.Set("sort[name]", "sideways")

	filter := ParseFilterFromQuery(values)
	assert.Empty(t, filter.Sort)
}

func TestParseFilterFromQueryExplicitOffsetWins(t *testing.T) {
	values := url.Values{}
	values.Set("page", "5")
	values.Set("limit", "10")
	values.Set("offset", "7")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 7, filter.Offset)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page2 := Paginate(items, 2, 10)
	assert.Equal(t, items[10:20], page2.Items)
	assert.Equal(t, int64(25), page2.TotalCount)
	assert.Equal(t, 2, page2.PageNumber)
	assert.Equal(t, 10, page2.PageSize)

	lastPage := Paginate(items, 3, 10)
	assert.Equal(t, items[20:25], lastPage.Items)

	pastEnd := Paginate(items, 9, 10)
	assert.Empty(t, pastEnd.Items)
	assert.Equal(t, int64(25), pastEnd.TotalCount)
}

func TestPaginateNormalizesBadInput(t *testing.T) {
	items := []string{"a", "b", "c"}

	res := Paginate(items, 0, 0)
	assert.Equal(t, 1, res.PageNumber)
	assert.Equal(t, 10, res.PageSize)
	assert.Equal(t, items, res.Items)
}

func TestNewPagedResultNeverNil(t *testing.T) {
	res := NewPagedResult[string](nil, 0, 1, 10)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

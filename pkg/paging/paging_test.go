package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, 1, Normalize(0))
	assert.Equal(t, 1, Normalize(-5))
	assert.Equal(t, 1, Normalize(1))
	assert.Equal(t, 7, Normalize(7))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 20))
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 20, Offset(2, 20))
	assert.Equal(t, 40, Offset(3, 20))
}

func TestNewComputesTotalPages(t *testing.T) {
	page := New([]string{"a", "b"}, 41, 1, 20)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.EqualValues(t, 41, page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewEmptyResult(t *testing.T) {
	page := New[string](nil, 0, 9, 20)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 9, page.Page)
}

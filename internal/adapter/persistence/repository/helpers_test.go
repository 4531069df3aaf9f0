package repository

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestFormatTime_SortsLexicographically(t *testing.T) {
	a := formatTime(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))
	b := formatTime(time.Date(2024, 5, 10, 9, 0, 0, 500, time.UTC))
	c := formatTime(time.Date(2024, 5, 10, 9, 0, 1, 0, time.UTC))

	assert.Len(t, a, len(b))
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.True(t, time.Date(2024, 5, 10, 9, 0, 0, 500, time.UTC).Equal(parseTime(b)))
}

func TestFormatTime_Zero(t *testing.T) {
	assert.Empty(t, formatTime(time.Time{}))
	assert.True(t, parseTime("").IsZero())
	assert.Nil(t, parseTimePtr(""))
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, page(items, 0, 2))
	assert.Equal(t, []int{5}, page(items, 4, 2))
	assert.Empty(t, page(items, 10, 2))
	assert.Equal(t, items, page(items, 0, 0))
}

func TestMergeNames(t *testing.T) {
	assert.Equal(t, map[string]string{"#a": "a", "#id": "id"},
		mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"}))
	assert.Equal(t, map[string]string{"#id": "id"}, mergeNames(nil, map[string]string{"#id": "id"}))
}

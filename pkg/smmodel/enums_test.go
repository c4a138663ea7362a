package smmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestSortOrderType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []smmodel.SortOrderType{"asc", "desc"}, smmodel.SortOrderType("").Values())
	assert.True(t, smmodel.SortOrderTypeDesc.IsKnown())
	assert.False(t, smmodel.SortOrderType("DESC").IsKnown())
	assert.False(t, smmodel.SortOrderType("").IsKnown())
}

func TestFilterNameStringType(t *testing.T) {
	t.Parallel()

	for _, v := range smmodel.FilterNameStringType("").Values() {
		assert.True(t, v.IsKnown(), v)
	}

	assert.Len(t, smmodel.FilterNameStringType("").Values(), 5)
	assert.False(t, smmodel.FilterNameStringType("owning-service").IsKnown())
}

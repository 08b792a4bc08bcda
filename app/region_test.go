package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRegionFullBlock(t *testing.T) {
	s := &fakeSheet{grid: [][]string{
		{"A", "B", "C"},
		{"1", "2", "3"},
		{"4", "5", "6"},
	}}

	region := DetectRegion(s)
	assert.Equal(t, Region{LastRow: 3, LastCol: 3}, region)
	assert.True(t, region.HasTable())
}

func TestDetectRegionStopsAtFirstEmptyRow(t *testing.T) {
	// row 2 is fully empty; row 3 is populated but past the gap
	s := &fakeSheet{grid: [][]string{
		{"A", "B"},
		{"", ""},
		{"x", "y"},
	}}

	region := DetectRegion(s)
	assert.Equal(t, 1, region.LastRow)
	assert.False(t, region.HasTable())
}

func TestDetectRegionStopsAtFirstEmptyColumn(t *testing.T) {
	// column 2 is empty within the bounded rows; column 3 is past the gap
	s := &fakeSheet{grid: [][]string{
		{"A", "", "C"},
		{"1", "", "3"},
	}}

	region := DetectRegion(s)
	assert.Equal(t, Region{LastRow: 2, LastCol: 1}, region)
}

func TestDetectRegionColumnGapIgnoresRowsBelowBoundary(t *testing.T) {
	// column 2 only holds a value below the row gap, so it stays empty
	s := &fakeSheet{grid: [][]string{
		{"A", ""},
		{"1", ""},
		{"", ""},
		{"", "stray"},
	}}

	region := DetectRegion(s)
	assert.Equal(t, Region{LastRow: 2, LastCol: 1}, region)
}

func TestDetectRegionEmptySheet(t *testing.T) {
	region := DetectRegion(&fakeSheet{})
	assert.Equal(t, Region{}, region)
	assert.False(t, region.HasTable())
}

func TestDetectRegionHeaderOnly(t *testing.T) {
	region := DetectRegion(&fakeSheet{grid: [][]string{{"A", "B"}}})
	assert.Equal(t, Region{LastRow: 1, LastCol: 2}, region)
	assert.False(t, region.HasTable())
}

func TestDetectRegionRaggedRowsExtendColumns(t *testing.T) {
	// a data row wider than the header still widens the region
	s := &fakeSheet{grid: [][]string{
		{"A", "B"},
		{"1", "2", "3"},
	}}

	region := DetectRegion(s)
	assert.Equal(t, Region{LastRow: 2, LastCol: 3}, region)
}

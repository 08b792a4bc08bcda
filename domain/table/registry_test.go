package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(labels ...string) *Table {
	return &Table{Header: labels}
}

func TestRetainedCommon(t *testing.T) {
	r := NewRegistry()
	r.Observe(headers("A", "B"))
	r.Observe(headers("B", "C"))
	r.Observe(headers("D"))

	cols := r.Retained(PolicyCommon)
	require.Len(t, cols, 1)
	assert.Equal(t, "b", cols[0].Key)
	assert.Equal(t, "B", cols[0].Label)
}

func TestRetainedUnion(t *testing.T) {
	r := NewRegistry()
	r.Observe(headers("A", "B"))
	r.Observe(headers("B", "C"))
	r.Observe(headers("D"))

	cols := r.Retained(PolicyUnion)
	require.Len(t, cols, 4)
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	// first-encounter order
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestObserveCountsOncePerSheet(t *testing.T) {
	r := NewRegistry()
	r.Observe(headers("Name", "name", " NAME "))
	assert.Equal(t, 1, r.Count("name"))

	r.Observe(headers("Name"))
	assert.Equal(t, 2, r.Count("name"))
	assert.Equal(t, 1, r.Len())
}

func TestFirstEncounterLabelWins(t *testing.T) {
	r := NewRegistry()
	r.Observe(headers("First Name"))
	r.Observe(headers("FIRSTNAME"))

	cols := r.Retained(PolicyUnion)
	require.Len(t, cols, 1)
	assert.Equal(t, "firstname", cols[0].Key)
	assert.Equal(t, "First Name", cols[0].Label)
}

func TestUnlabeledColumnsCollide(t *testing.T) {
	r := NewRegistry()
	r.Observe(headers("A", ""))
	r.Observe(headers("", "B"))

	assert.Equal(t, 2, r.Count(""))
	cols := r.Retained(PolicyCommon)
	require.Len(t, cols, 1)
	assert.Equal(t, "", cols[0].Key)
}

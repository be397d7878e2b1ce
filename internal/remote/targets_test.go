package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTargets() []Target {
	return SortTargets([]Target{
		{ID: "c", Name: "Cellar", Available: true},
		{ID: "a", Name: "Attic", Available: true},
		{ID: "b", Name: "Bedroom", Available: true},
	})
}

func TestSortTargets_ByNameCaseInsensitive(t *testing.T) {
	sorted := SortTargets([]Target{
		{ID: "2", Name: "kitchen"},
		{ID: "1", Name: "Attic"},
		{ID: "3", Name: "bedroom"},
	})

	names := []string{sorted[0].Name, sorted[1].Name, sorted[2].Name}
	assert.Equal(t, []string{"Attic", "bedroom", "kitchen"}, names)
}

func TestSortTargets_DoesNotMutateInput(t *testing.T) {
	in := []Target{{ID: "2", Name: "B"}, {ID: "1", Name: "A"}}
	SortTargets(in)
	assert.Equal(t, "2", in[0].ID)
}

func TestAdjacentTarget_MiddleOfList(t *testing.T) {
	targets := threeTargets() // Attic, Bedroom, Cellar

	next := AdjacentTarget(targets, "b", 1)
	require.NotNil(t, next)
	assert.Equal(t, "c", next.ID)

	prev := AdjacentTarget(targets, "b", -1)
	require.NotNil(t, prev)
	assert.Equal(t, "a", prev.ID)
}

func TestAdjacentTarget_AtListEnds(t *testing.T) {
	targets := threeTargets()

	assert.Nil(t, AdjacentTarget(targets, "a", -1))
	assert.Nil(t, AdjacentTarget(targets, "c", 1))
}

func TestAdjacentTarget_SkipsUnavailable(t *testing.T) {
	targets := SortTargets([]Target{
		{ID: "a", Name: "Attic", Available: true},
		{ID: "b", Name: "Bedroom", Available: false},
		{ID: "c", Name: "Cellar", Available: true},
	})

	next := AdjacentTarget(targets, "a", 1)
	require.NotNil(t, next)
	assert.Equal(t, "c", next.ID)
}

func TestAdjacentTarget_SingleTarget(t *testing.T) {
	targets := []Target{{ID: "a", Name: "Attic", Available: true}}

	assert.Nil(t, AdjacentTarget(targets, "a", 1))
	assert.Nil(t, AdjacentTarget(targets, "a", -1))
}

func TestAdjacentTarget_UnknownSelection(t *testing.T) {
	assert.Nil(t, AdjacentTarget(threeTargets(), "nope", 1))
	assert.Nil(t, AdjacentTarget(threeTargets(), "b", 0))
}

func TestFindTarget(t *testing.T) {
	targets := threeTargets()

	found := FindTarget(targets, "b")
	require.NotNil(t, found)
	assert.Equal(t, "Bedroom", found.Name)

	assert.Nil(t, FindTarget(targets, "zzz"))
}

func TestRepeatMode_Cycle(t *testing.T) {
	assert.Equal(t, RepeatAll, RepeatOff.Cycle())
	assert.Equal(t, RepeatOne, RepeatAll.Cycle())
	assert.Equal(t, RepeatOff, RepeatOne.Cycle())
}

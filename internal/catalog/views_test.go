package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/catalog"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/domain"
)

func TestTimeline_GroupsDescendingWithTrailingUnknown(t *testing.T) {
	store, err := catalog.New([]domain.Club{
		{ShortName: "Fluminense", FullName: "Fluminense Football Club", Founded: intPtr(1902)},
		{ShortName: "Corinthians", FullName: "Sport Club Corinthians Paulista", Founded: intPtr(1910)},
		{ShortName: "Desconhecido", FullName: "Clube Sem Fundação"},
	})
	require.NoError(t, err)

	groups := store.Timeline("")

	require.Len(t, groups, 3)

	require.NotNil(t, groups[0].Year)
	assert.Equal(t, 1910, *groups[0].Year)
	require.NotNil(t, groups[1].Year)
	assert.Equal(t, 1902, *groups[1].Year)

	// Unknown founding year collects into a trailing nil-year group.
	assert.Nil(t, groups[2].Year)
	require.Len(t, groups[2].Clubs, 1)
	assert.Equal(t, "Desconhecido", groups[2].Clubs[0].ShortName)
}

func TestTimeline_GroupMembersSortedByShortName(t *testing.T) {
	store, err := catalog.New([]domain.Club{
		{ShortName: "Paysandu", FullName: "Paysandu Sport Club", Founded: intPtr(1914)},
		{ShortName: "América", FullName: "América Futebol Clube", Founded: intPtr(1914)},
		{ShortName: "Bangu", FullName: "Bangu Atlético Clube", Founded: intPtr(1914)},
	})
	require.NoError(t, err)

	groups := store.Timeline("")

	require.Len(t, groups, 1)
	names := []string{
		groups[0].Clubs[0].ShortName,
		groups[0].Clubs[1].ShortName,
		groups[0].Clubs[2].ShortName,
	}
	// Collation sorts the accented name first, not by raw byte order.
	assert.Equal(t, []string{"América", "Bangu", "Paysandu"}, names)
}

func TestTimeline_QueryFiltersShortNameOnly(t *testing.T) {
	store := newTestStore(t)

	groups := store.Timeline("flumin")

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Clubs, 1)
	assert.Equal(t, "Fluminense", groups[0].Clubs[0].ShortName)

	// The query matches short names, not cities.
	assert.Empty(t, store.Timeline("rio de janeiro"))
}

func TestGrid_SortByFoundedUnknownLast(t *testing.T) {
	store, err := catalog.New([]domain.Club{
		{ShortName: "Sem Ano", FullName: "Clube Sem Ano"},
		{ShortName: "Novo", FullName: "Clube Novo", Founded: intPtr(1950)},
		{ShortName: "Antigo", FullName: "Clube Antigo", Founded: intPtr(1900)},
	})
	require.NoError(t, err)

	data := store.Grid("", catalog.SortFounded)

	require.Len(t, data, 3)
	assert.Equal(t, "Antigo", data[0].ShortName)
	assert.Equal(t, "Novo", data[1].ShortName)
	assert.Equal(t, "Sem Ano", data[2].ShortName)
}

func TestGrid_SortByShortName(t *testing.T) {
	store := newTestStore(t)

	data := store.Grid("", catalog.SortShortName)

	require.Len(t, data, 4)
	assert.Equal(t, "América", data[0].ShortName)
	assert.Equal(t, "Corinthians", data[1].ShortName)
}

func TestGrid_UnsortedKeepsInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	data := store.Grid("", "")

	require.Len(t, data, 4)
	assert.Equal(t, "Fluminense", data[0].ShortName)
	assert.Equal(t, "América", data[3].ShortName)
}

func TestGrid_QueryFilter(t *testing.T) {
	store := newTestStore(t)

	data := store.Grid("CORIN", "")

	require.Len(t, data, 1)
	assert.Equal(t, "Corinthians", data[0].ShortName)
}

func TestByState(t *testing.T) {
	store := newTestStore(t)

	data := store.ByState("rj")

	require.Len(t, data, 2)
	// Sorted by short name, not insertion order.
	assert.Equal(t, "América", data[0].ShortName)
	assert.Equal(t, "Fluminense", data[1].ShortName)

	assert.Empty(t, store.ByState("MG"))
}

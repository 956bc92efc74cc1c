package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-agenda/models"
)

var searchEvents = []models.Event{
	{ID: 1, Title: "Conferencia de Sistemas", Department: "Sistemas computacionales"},
	{ID: 2, Title: "Torneo", Department: "Deportes", Location: "Gimnasio central"},
	{ID: 3, Title: "Expo", Description: "Proyectos de mecatrónica"},
	{ID: 4},
}

func TestSearch_CaseInsensitive(t *testing.T) {
	for _, query := range []string{"SISTEMAS", "sistemas", "SiStEmAs"} {
		got := Search(searchEvents, query)
		require.Len(t, got, 1, "query %q", query)
		assert.Equal(t, 1, got[0].ID)
	}
}

func TestSearch_MatchesAnyField(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "title", query: "torneo", want: 2},
		{name: "department", query: "deportes", want: 2},
		{name: "location", query: "gimnasio", want: 2},
		{name: "description", query: "proyectos", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(searchEvents, tt.query)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].ID)
		})
	}
}

func TestSearch_TrimsQuery(t *testing.T) {
	got := Search(searchEvents, "  torneo  ")

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	assert.Equal(t, searchEvents, Search(searchEvents, ""))
	assert.Equal(t, searchEvents, Search(searchEvents, "   "))
}

func TestSearch_MissingFieldsNeverMatch(t *testing.T) {
	// Event 4 has no fields at all; no query should reach it or panic.
	got := Search(searchEvents, "e")

	for _, ev := range got {
		assert.NotEqual(t, 4, ev.ID)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	assert.Empty(t, Search(searchEvents, "química"))
}

package service

import (
	"reflect"
	"testing"

	"deal-pipeline-api/internal/domain"
)

func sampleDeals() []domain.Deal {
	return []domain.Deal{
		{ID: "1", ClientName: "John Smith", ProductName: "Vobb OS Pro", Stage: domain.StageLeadGenerated, CreatedDate: "2024-01-15"},
		{ID: "2", ClientName: "Sarah Johnson", ProductName: "Vobb OS Enterprise", Stage: domain.StageCompleted, CreatedDate: "2024-01-10"},
		{ID: "3", ClientName: "Mike Chen", ProductName: "Vobb OS Lite", Stage: domain.StageContacted, CreatedDate: "2024-01-12", Notes: "affordable solution"},
	}
}

func ids(deals []domain.Deal) []string {
	out := make([]string, len(deals))
	for i, d := range deals {
		out[i] = d.ID
	}
	return out
}

func TestProjectTable_SearchMatchesClientAndNotes(t *testing.T) {
	deals := sampleDeals()

	tests := []struct {
		name     string
		query    TableQuery
		expected []string
	}{
		{
			name:     "case-insensitive substring matches both Johns",
			query:    TableQuery{Search: "john", StageFilter: StageFilterAll, SortKey: SortByCreatedDate, SortDir: SortAsc},
			expected: []string{"2", "1"},
		},
		{
			name:     "stage filter excludes non-completed matches",
			query:    TableQuery{Search: "john", StageFilter: string(domain.StageCompleted), SortKey: SortByClientName, SortDir: SortAsc},
			expected: []string{"2"},
		},
		{
			name:     "search covers notes",
			query:    TableQuery{Search: "AFFORDABLE", StageFilter: StageFilterAll, SortKey: SortByClientName, SortDir: SortAsc},
			expected: []string{"3"},
		},
		{
			name:     "whitespace-only search matches everything",
			query:    TableQuery{Search: "   ", StageFilter: StageFilterAll, SortKey: SortByCreatedDate, SortDir: SortAsc},
			expected: []string{"2", "3", "1"},
		},
		{
			name:     "no match yields empty sequence",
			query:    TableQuery{Search: "zzz", StageFilter: StageFilterAll, SortKey: SortByClientName, SortDir: SortAsc},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ProjectTable(deals, tt.query))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProjectTable_SortByCreatedDateChronological(t *testing.T) {
	deals := []domain.Deal{
		{ID: "a", CreatedDate: "2024-01-15"},
		{ID: "b", CreatedDate: "2024-01-10"},
	}

	asc := ProjectTable(deals, TableQuery{StageFilter: StageFilterAll, SortKey: SortByCreatedDate, SortDir: SortAsc})
	if asc[0].ID != "b" || asc[1].ID != "a" {
		t.Errorf("ascending: expected [b a], got %v", ids(asc))
	}

	desc := ProjectTable(deals, TableQuery{StageFilter: StageFilterAll, SortKey: SortByCreatedDate, SortDir: SortDesc})
	if desc[0].ID != "a" || desc[1].ID != "b" {
		t.Errorf("descending: expected [a b], got %v", ids(desc))
	}
}

func TestProjectTable_StableSortKeepsInsertionOrderOnTies(t *testing.T) {
	deals := []domain.Deal{
		{ID: "first", ClientName: "Same", CreatedDate: "2024-02-01"},
		{ID: "second", ClientName: "Same", CreatedDate: "2024-02-01"},
		{ID: "third", ClientName: "Same", CreatedDate: "2024-02-01"},
	}

	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		got := ids(ProjectTable(deals, TableQuery{StageFilter: StageFilterAll, SortKey: SortByClientName, SortDir: dir}))
		want := []string{"first", "second", "third"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("dir %s: expected stable order %v, got %v", dir, want, got)
		}
	}
}

func TestProjectTable_DoesNotMutateInput(t *testing.T) {
	deals := sampleDeals()
	original := make([]domain.Deal, len(deals))
	copy(original, deals)

	ProjectTable(deals, TableQuery{StageFilter: StageFilterAll, SortKey: SortByCreatedDate, SortDir: SortDesc})

	if !reflect.DeepEqual(deals, original) {
		t.Error("input slice was mutated by projection")
	}
}

func TestProjectTable_FilterIdempotent(t *testing.T) {
	q := TableQuery{Search: "john", StageFilter: StageFilterAll, SortKey: SortByClientName, SortDir: SortAsc}
	once := ProjectTable(sampleDeals(), q)
	twice := ProjectTable(once, q)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("projection is not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestToggleSort(t *testing.T) {
	state := SortState{Key: SortByClientName, Dir: SortAsc}

	state = ToggleSort(state, SortByClientName)
	if state.Key != SortByClientName || state.Dir != SortDesc {
		t.Errorf("same key should flip direction, got %+v", state)
	}

	state = ToggleSort(state, SortByClientName)
	if state.Dir != SortAsc {
		t.Errorf("second toggle should flip back, got %+v", state)
	}

	state = ToggleSort(state, SortByCreatedDate)
	if state.Key != SortByCreatedDate || state.Dir != SortAsc {
		t.Errorf("new key should reset to ascending, got %+v", state)
	}
}

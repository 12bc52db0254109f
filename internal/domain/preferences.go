package domain

// TabularPreferences controls column visibility in the table view
type TabularPreferences struct {
	ShowClientName  bool `json:"showClientName"`
	ShowProductName bool `json:"showProductName"`
	ShowStage       bool `json:"showStage"`
	ShowCreatedDate bool `json:"showCreatedDate"`
	ShowActions     bool `json:"showActions"`
}

// KanbanPreferences controls card field visibility on the board view
type KanbanPreferences struct {
	ShowClientName  bool `json:"showClientName"`
	ShowProductName bool `json:"showProductName"`
	ShowCreatedDate bool `json:"showCreatedDate"`
}

// ViewPreferences holds the per-view display preferences. The tabular and
// kanban records are independent: updating one never touches the other.
type ViewPreferences struct {
	Tabular TabularPreferences `json:"tabular"`
	Kanban  KanbanPreferences  `json:"kanban"`
}

// DefaultViewPreferences returns the initial preferences (everything shown)
func DefaultViewPreferences() ViewPreferences {
	return ViewPreferences{
		Tabular: TabularPreferences{
			ShowClientName:  true,
			ShowProductName: true,
			ShowStage:       true,
			ShowCreatedDate: true,
			ShowActions:     true,
		},
		Kanban: KanbanPreferences{
			ShowClientName:  true,
			ShowProductName: true,
			ShowCreatedDate: true,
		},
	}
}

// TabularPreferencesPatch is a partial update to the tabular preferences
type TabularPreferencesPatch struct {
	ShowClientName  *bool `json:"showClientName,omitempty"`
	ShowProductName *bool `json:"showProductName,omitempty"`
	ShowStage       *bool `json:"showStage,omitempty"`
	ShowCreatedDate *bool `json:"showCreatedDate,omitempty"`
	ShowActions     *bool `json:"showActions,omitempty"`
}

// KanbanPreferencesPatch is a partial update to the kanban preferences
type KanbanPreferencesPatch struct {
	ShowClientName  *bool `json:"showClientName,omitempty"`
	ShowProductName *bool `json:"showProductName,omitempty"`
	ShowCreatedDate *bool `json:"showCreatedDate,omitempty"`
}

// ViewPreferencesPatch is a recursive partial update. A nil sub-object
// leaves that view's preferences untouched; within a present sub-object,
// nil fields keep their prior value. A naive shallow merge would wipe
// sibling keys, so the two sub-objects merge independently.
type ViewPreferencesPatch struct {
	Tabular *TabularPreferencesPatch `json:"tabular,omitempty"`
	Kanban  *KanbanPreferencesPatch  `json:"kanban,omitempty"`
}

// Apply merges the patch over prefs and returns the merged preferences.
// The input is not mutated.
func (p ViewPreferencesPatch) Apply(prefs ViewPreferences) ViewPreferences {
	if p.Tabular != nil {
		t := &prefs.Tabular
		if p.Tabular.ShowClientName != nil {
			t.ShowClientName = *p.Tabular.ShowClientName
		}
		if p.Tabular.ShowProductName != nil {
			t.ShowProductName = *p.Tabular.ShowProductName
		}
		if p.Tabular.ShowStage != nil {
			t.ShowStage = *p.Tabular.ShowStage
		}
		if p.Tabular.ShowCreatedDate != nil {
			t.ShowCreatedDate = *p.Tabular.ShowCreatedDate
		}
		if p.Tabular.ShowActions != nil {
			t.ShowActions = *p.Tabular.ShowActions
		}
	}
	if p.Kanban != nil {
		k := &prefs.Kanban
		if p.Kanban.ShowClientName != nil {
			k.ShowClientName = *p.Kanban.ShowClientName
		}
		if p.Kanban.ShowProductName != nil {
			k.ShowProductName = *p.Kanban.ShowProductName
		}
		if p.Kanban.ShowCreatedDate != nil {
			k.ShowCreatedDate = *p.Kanban.ShowCreatedDate
		}
	}
	return prefs
}

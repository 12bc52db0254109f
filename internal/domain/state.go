package domain

// ViewMode identifies which view the UI is rendering
type ViewMode string

const (
	ViewTabular ViewMode = "tabular"
	ViewKanban  ViewMode = "kanban"
)

// IsValid reports whether v is a known view mode
func (v ViewMode) IsValid() bool {
	return v == ViewTabular || v == ViewKanban
}

// User is the authenticated user stub
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AppState is the full application state held by the store. Collections are
// populated only by explicit load calls; CurrentView, ViewPreferences,
// IsAuthenticated and User are the persisted subset, everything else starts
// from hard-coded defaults on every boot.
type AppState struct {
	Deals           []Deal          `json:"deals"`
	Products        []Product       `json:"products"`
	Clients         []Client        `json:"clients"`
	CurrentView     ViewMode        `json:"currentView"`
	ViewPreferences ViewPreferences `json:"viewPreferences"`
	ActiveDeal      *Deal           `json:"activeDeal"`
	IsLoading       bool            `json:"isLoading"`
	Error           *string         `json:"error"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	User            *User           `json:"user"`
}

// NewAppState returns the initial state: empty collections, tabular view,
// default preferences, logged out.
func NewAppState() AppState {
	return AppState{
		Deals:           []Deal{},
		Products:        []Product{},
		Clients:         []Client{},
		CurrentView:     ViewTabular,
		ViewPreferences: DefaultViewPreferences(),
	}
}

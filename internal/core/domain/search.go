package domain

// SearchResult is an ephemeral projection of a record or registry entry.
type SearchResult struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Kind        Kind           `json:"kind"`
	Module      string         `json:"module"`
	URL         string         `json:"url"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Searchable is implemented by anything the search aggregator can scan.
type Searchable interface {
	// SearchFields returns the free-text fields matched against a query.
	SearchFields() []string
	ToSearchResult() SearchResult
}

// SearchState describes where a live search session currently is.
type SearchState string

const (
	SearchIdle      SearchState = "idle"
	SearchSearching SearchState = "searching"
	SearchResults   SearchState = "results"
	SearchNoResults SearchState = "no_results"
)

// ModuleEntry is a navigable portal module or a quick action shortcut.
type ModuleEntry struct {
	ID          string
	Title       string
	Description string
	Module      string
	QuickAction bool
}

func (m ModuleEntry) SearchFields() []string {
	return []string{m.Title, m.Description}
}

func (m ModuleEntry) ToSearchResult() SearchResult {
	kind := "navigation"
	if m.QuickAction {
		kind = "quick-action"
	}
	return SearchResult{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Kind:        KindModule,
		Module:      m.Module,
		URL:         "/" + m.Module,
		Metadata:    map[string]any{"type": kind},
	}
}

// Modules is the static registry of portal modules.
var Modules = []ModuleEntry{
	{ID: "dashboard", Title: "Dashboard", Description: "Overview of campus activities and statistics", Module: "dashboard"},
	{ID: "notices", Title: "Notice Board", Description: "Campus announcements and notifications", Module: "notices"},
	{ID: "complaints", Title: "Complaints", Description: "Submit and track campus complaints", Module: "complaints"},
	{ID: "lost-found", Title: "Lost & Found", Description: "Report lost items or find lost belongings", Module: "lost-found"},
	{ID: "study-resources", Title: "Study Resources", Description: "Access study materials and notes", Module: "study-resources"},
	{ID: "timetable", Title: "Timetable", Description: "View and manage class schedules", Module: "timetable"},
	{ID: "skills", Title: "Skills", Description: "Track and develop professional skills", Module: "skills"},
	{ID: "polls", Title: "Polls & Feedback", Description: "Participate in polls and share feedback", Module: "polls"},
	{ID: "room-booking", Title: "Room Booking", Description: "Book seminar halls and labs", Module: "room-booking"},
	{ID: "canteen", Title: "Canteen", Description: "Order food from campus canteen", Module: "canteen"},
	{ID: "bus-tracker", Title: "Bus Tracker", Description: "Track campus bus locations", Module: "bus-tracker"},
	{ID: "events", Title: "Events", Description: "Campus events and registrations", Module: "events"},
	{ID: "hostel", Title: "Hostel Services", Description: "Hostel-related services and requests", Module: "hostel"},
	{ID: "lab-tools", Title: "Lab Tools", Description: "Borrow and return lab equipment", Module: "lab-tools"},
	{ID: "placements", Title: "Placements", Description: "Job opportunities and applications", Module: "placements"},
}

// QuickActions are shortcuts into a module's primary action.
var QuickActions = []ModuleEntry{
	{ID: "add-complaint", Title: "Submit Complaint", Description: "Report a new campus issue", Module: "complaints", QuickAction: true},
	{ID: "book-room", Title: "Book Room", Description: "Reserve a seminar hall or lab", Module: "room-booking", QuickAction: true},
	{ID: "add-skill", Title: "Add Skill", Description: "Add a new skill to your portfolio", Module: "skills", QuickAction: true},
	{ID: "view-timetable", Title: "View Timetable", Description: "Check your class schedule", Module: "timetable", QuickAction: true},
	{ID: "order-food", Title: "Order Food", Description: "Place a canteen order", Module: "canteen", QuickAction: true},
	{ID: "track-bus", Title: "Track Bus", Description: "Find campus bus locations", Module: "bus-tracker", QuickAction: true},
}

package domain

// Notice is an announcement on the notice board.
type Notice struct {
	Base        `bson:",inline"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Content     string   `json:"content" bson:"content" validate:"required"`
	Department  string   `json:"department" bson:"department" validate:"required"`
	Year        string   `json:"year,omitempty" bson:"year,omitempty"`
	Author      string   `json:"author" bson:"author"`
	Priority    string   `json:"priority" bson:"priority" validate:"oneof=low medium high"`
	Attachments []string `json:"attachments,omitempty" bson:"attachments,omitempty"`
	IsPinned    bool     `json:"is_pinned" bson:"is_pinned"`
}

func (Notice) RecordKind() Kind { return KindNotice }

func (n *Notice) ApplyDefaults() {
	if n.Priority == "" {
		n.Priority = "medium"
	}
}

func (n Notice) SearchFields() []string {
	return []string{n.Title, n.Content, n.Department, n.Author}
}

func (n Notice) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Content,
		Kind:        KindNotice,
		Module:      "notices",
		URL:         "/notices",
		Metadata:    map[string]any{"priority": n.Priority, "department": n.Department},
	}
}

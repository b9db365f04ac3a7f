package domain

import "fmt"

// LostFoundItem is a report of a lost or found belonging.
type LostFoundItem struct {
	Base        `bson:",inline"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description"`
	Type        string `json:"type" bson:"type" validate:"required,oneof=lost found"`
	Category    string `json:"category" bson:"category" validate:"required"`
	Location    string `json:"location" bson:"location" validate:"required"`
	Date        string `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	ContactInfo string `json:"contact_info" bson:"contact_info" validate:"required"`
	Status      string `json:"status" bson:"status" validate:"oneof=active resolved expired"`
	ReportedBy  string `json:"reported_by" bson:"reported_by"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty" validate:"omitempty,url"`
}

func (LostFoundItem) RecordKind() Kind { return KindLostFound }

func (i *LostFoundItem) ApplyDefaults() {
	if i.Status == "" {
		i.Status = "active"
	}
}

func (i LostFoundItem) SearchFields() []string {
	return []string{i.Title, i.Description, i.Category, i.Location}
}

func (i LostFoundItem) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          i.ID,
		Title:       i.Title,
		Description: fmt.Sprintf("%s - %s", i.Type, i.Location),
		Kind:        KindLostFound,
		Module:      "lost-found",
		URL:         "/lost-found",
		Metadata:    map[string]any{"type": i.Type, "status": i.Status},
	}
}

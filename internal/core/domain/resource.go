package domain

import "fmt"

// StudyResource is shared course material.
type StudyResource struct {
	Base        `bson:",inline"`
	Title       string  `json:"title" bson:"title" validate:"required"`
	Type        string  `json:"type" bson:"type" validate:"required,oneof=notes question-paper ebook assignment video book exam"`
	Subject     string  `json:"subject" bson:"subject" validate:"required"`
	Semester    string  `json:"semester" bson:"semester"`
	Department  string  `json:"department,omitempty" bson:"department,omitempty"`
	UploadedBy  string  `json:"uploaded_by" bson:"uploaded_by"`
	FileURL     string  `json:"file_url,omitempty" bson:"file_url,omitempty" validate:"omitempty,url"`
	Downloads   int     `json:"downloads" bson:"downloads" validate:"gte=0"`
	Rating      float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

func (StudyResource) RecordKind() Kind { return KindResource }

// ApplyDefaults resets the usage counters; a new upload starts with none.
func (r *StudyResource) ApplyDefaults() {
	r.Downloads = 0
	r.Rating = 0
}

func (r StudyResource) SearchFields() []string {
	return []string{r.Title, r.Subject, r.Semester, r.Description}
}

func (r StudyResource) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          r.ID,
		Title:       r.Title,
		Description: fmt.Sprintf("%s - %s", r.Subject, r.Semester),
		Kind:        KindResource,
		Module:      "study-resources",
		URL:         "/study-resources",
		Metadata:    map[string]any{"type": r.Type, "downloads": r.Downloads},
	}
}

package domain

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

// Comment is a free-text note attached to a complaint. Author is a display
// name, not a user reference.
type Comment struct {
	Text      string    `json:"text" bson:"text"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Complaint is a campus issue raised by a user.
type Complaint struct {
	Base        `bson:",inline"`
	Title       string          `json:"title" bson:"title" validate:"required,max=200"`
	Category    string          `json:"category" bson:"category" validate:"required"`
	Description string          `json:"description" bson:"description" validate:"required"`
	Status      ComplaintStatus `json:"status" bson:"status" validate:"oneof=open pending in-progress resolved closed"`
	Priority    string          `json:"priority" bson:"priority" validate:"oneof=low medium high urgent"`
	SubmittedBy string          `json:"submitted_by" bson:"submitted_by"`
	AssignedTo  string          `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
	Feedback    string          `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Comments    []Comment       `json:"comments" bson:"comments"`
}

func (Complaint) RecordKind() Kind { return KindComplaint }

func (c *Complaint) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ComplaintOpen
	}
	if c.Priority == "" {
		c.Priority = "medium"
	}
	if c.Comments == nil {
		c.Comments = []Comment{}
	}
}

// AddComment appends a comment to the complaint thread.
func (c *Complaint) AddComment(text, author string, at time.Time) {
	c.Comments = append(c.Comments, Comment{Text: text, Author: author, CreatedAt: at})
}

func (c Complaint) SearchFields() []string {
	return []string{c.Title, c.Description, c.Category}
}

func (c Complaint) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Kind:        KindComplaint,
		Module:      "complaints",
		URL:         "/complaints",
		Metadata:    map[string]any{"status": c.Status, "priority": c.Priority},
	}
}

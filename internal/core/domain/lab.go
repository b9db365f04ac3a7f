package domain

import "time"

// BorrowRequest asks to borrow a lab tool.
type BorrowRequest struct {
	Base             `bson:",inline"`
	ToolID           string     `json:"tool_id" bson:"tool_id" validate:"required"`
	ToolName         string     `json:"tool_name" bson:"tool_name" validate:"required"`
	RequestedBy      string     `json:"requested_by" bson:"requested_by"`
	Purpose          string     `json:"purpose" bson:"purpose" validate:"required"`
	ExpectedDuration string     `json:"expected_duration" bson:"expected_duration"`
	Status           string     `json:"status" bson:"status" validate:"oneof=pending approved rejected returned"`
	ApprovedBy       string     `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	BorrowedAt       *time.Time `json:"borrowed_at,omitempty" bson:"borrowed_at,omitempty"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty" bson:"returned_at,omitempty"`
}

func (BorrowRequest) RecordKind() Kind { return KindBorrowRequest }

func (r *BorrowRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "pending"
	}
}

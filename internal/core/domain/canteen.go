package domain

import "math"

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id" validate:"required"`
	Name       string  `json:"name" bson:"name" validate:"required"`
	Price      float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity   int     `json:"quantity" bson:"quantity" validate:"gte=1"`
}

// CanteenOrder is a food order placed with the campus canteen.
type CanteenOrder struct {
	Base                `bson:",inline"`
	Items               []OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Total               float64     `json:"total" bson:"total"`
	Status              string      `json:"status" bson:"status" validate:"oneof=pending preparing ready completed delivered cancelled"`
	OrderedBy           string      `json:"ordered_by" bson:"ordered_by"`
	EstimatedTime       string      `json:"estimated_time,omitempty" bson:"estimated_time,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	PaymentStatus       string      `json:"payment_status" bson:"payment_status" validate:"oneof=pending paid refunded"`
}

func (CanteenOrder) RecordKind() Kind { return KindCanteenOrder }

// ApplyDefaults computes the order total from its line items.
func (o *CanteenOrder) ApplyDefaults() {
	if o.Status == "" {
		o.Status = "pending"
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = "pending"
	}
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	o.Total = math.Round(total*100) / 100
}

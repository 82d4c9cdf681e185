// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their relational shape.
// Line items are stored as a JSONB document on the order row.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and trip assignment for the dispatch pool and manifest
// lookups.
type OrderDTO struct {
	ID              string  `gorm:"primaryKey"`
	CustomerID      string  `gorm:"index"`
	CustomerName    string
	SalespersonID   string
	SalespersonName string
	Date            string   `gorm:"index"`
	Items           ItemsDTO `gorm:"type:jsonb"`
	TotalItems      int
	TotalAmount     int64
	Discount        int64
	Status          int     `gorm:"index"`
	TripID          *string `gorm:"index"`
	Remarks         string
	PaymentMethod   string
	VATRequired     bool   `gorm:"column:vat_required"`
	GPS             string `gorm:"column:gps"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the JSON shape of a single order line inside the items document.
type ItemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Rate        int64  `json:"rate"`
	Discount    int64  `json:"discount"`
	Scheme      string `json:"scheme,omitempty"`
}

// ItemsDTO persists the order's line items as a single JSONB column.
type ItemsDTO []ItemDTO

// Value serializes the line items for storage.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan deserializes the stored JSONB document back into line items.
func (items *ItemsDTO) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}

	return json.Unmarshal(raw, items)
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tripID *string
	if id := aggregate.Trip(); id != nil {
		raw := id.String()
		tripID = &raw
	}

	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Qty:         item.Qty(),
			Rate:        item.Rate().Cents(),
			Discount:    item.Discount().Cents(),
			Scheme:      item.Scheme(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID(),
		CustomerName:    aggregate.CustomerName(),
		SalespersonID:   aggregate.SalespersonID(),
		SalespersonName: aggregate.SalespersonName(),
		Date:            aggregate.Date().String(),
		Items:           items,
		TotalItems:      aggregate.TotalItems(),
		TotalAmount:     aggregate.TotalAmount().Cents(),
		Discount:        aggregate.Discount().Cents(),
		Status:          int(aggregate.Status()),
		TripID:          tripID,
		Remarks:         aggregate.Remarks(),
		PaymentMethod:   aggregate.PaymentMethod(),
		VATRequired:     aggregate.VATRequired(),
		GPS:             aggregate.GPS(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which re-checks status and trip-reference coherence.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	date, err := kernel.ParseDeliveryDate(dto.Date)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		rate, rateErr := kernel.NewMoneyFromCents(itemDTO.Rate)
		if rateErr != nil {
			return nil, rateErr
		}
		lineDiscount, discountErr := kernel.NewMoneyFromCents(itemDTO.Discount)
		if discountErr != nil {
			return nil, discountErr
		}

		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.ProductName,
			itemDTO.Qty, rate, lineDiscount, itemDTO.Scheme)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoneyFromCents(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoneyFromCents(dto.Discount)
	if err != nil {
		return nil, err
	}

	var tripID *kernel.TripID
	if dto.TripID != nil {
		tID, tripErr := kernel.TripIDFromString(*dto.TripID)
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	return order.RestoreOrder(id,
		dto.CustomerID, dto.CustomerName,
		dto.SalespersonID, dto.SalespersonName,
		date, items, dto.TotalItems, totalAmount, discount,
		order.Status(dto.Status), tripID,
		dto.Remarks, dto.PaymentMethod, dto.VATRequired, dto.GPS)
}

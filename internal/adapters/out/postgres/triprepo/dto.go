// Package triprepo provides data transfer objects and mapping functions for
// trip persistence. The trip's order manifest is stored as a text[] column,
// keeping the aggregate a single row.
package triprepo

import (
	"time"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/trip"

	"github.com/lib/pq"
)

// TripDTO represents the database structure for persisting trip aggregates.
type TripDTO struct {
	ID                 string `gorm:"primaryKey"`
	Date               string `gorm:"index"`
	DeliveryPersonID   string `gorm:"index"`
	DeliveryPersonName string
	VehicleID          string
	VehicleName        string
	OrderIDs           pq.StringArray `gorm:"type:text[]"`
	TotalOrders        int
	TotalAmount        int64
	Status             int `gorm:"index"`
	CreatedAt          time.Time
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	manifest := aggregate.OrderIDs()
	orderIDs := make(pq.StringArray, 0, len(manifest))
	for _, id := range manifest {
		orderIDs = append(orderIDs, id.String())
	}

	return TripDTO{
		ID:                 aggregate.ID().String(),
		Date:               aggregate.Date().String(),
		DeliveryPersonID:   aggregate.DeliveryPersonID(),
		DeliveryPersonName: aggregate.DeliveryPersonName(),
		VehicleID:          aggregate.VehicleID(),
		VehicleName:        aggregate.VehicleName(),
		OrderIDs:           orderIDs,
		TotalOrders:        aggregate.TotalOrders(),
		TotalAmount:        aggregate.TotalAmount().Cents(),
		Status:             int(aggregate.Status()),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a trip aggregate using RestoreTrip,
// which re-checks manifest and aggregate coherence.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.TripIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	date, err := kernel.ParseDeliveryDate(dto.Date)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.OrderID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.OrderIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	totalAmount, err := kernel.NewMoneyFromCents(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(id, date,
		dto.DeliveryPersonID, dto.DeliveryPersonName,
		dto.VehicleID, dto.VehicleName,
		orderIDs, dto.TotalOrders, totalAmount,
		trip.Status(dto.Status), dto.CreatedAt)
}

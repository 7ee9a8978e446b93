// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. Handles conversion between the driver aggregate and its
// database representation.
package driverrepo

import (
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
// No availability flag is stored here: busyness is derived from the active
// order board, never from the roster.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Username  string `gorm:"uniqueIndex"`
	Status    int
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Username:  aggregate.Username(),
		Status:    int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Username,
		driver.EmploymentStatus(dto.Status),
	)
}

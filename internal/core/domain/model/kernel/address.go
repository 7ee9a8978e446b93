package kernel

import (
	"fmt"

	"tastyfood/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates an Address was not created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the delivery destination of an order. Street, city, state and zip
// are required; the apartment or unit number is optional.
type Address struct {
	street string
	apt    string
	city   string
	state  string
	zip    string

	isConstructed bool
}

// NewAddress creates a validated delivery address. Missing required parts fail
// with a validation error naming the first absent field.
func NewAddress(street, apt, city, state, zip string) (Address, error) {
	switch {
	case street == "":
		return Address{}, errs.NewValueIsRequiredError("street")
	case city == "":
		return Address{}, errs.NewValueIsRequiredError("city")
	case state == "":
		return Address{}, errs.NewValueIsRequiredError("state")
	case zip == "":
		return Address{}, errs.NewValueIsRequiredError("zip")
	}

	return Address{
		street:        street,
		apt:           apt,
		city:          city,
		state:         state,
		zip:           zip,
		isConstructed: true,
	}, nil
}

// Street returns the building number and street.
func (a Address) Street() string {
	return a.street
}

// Apt returns the apartment or unit number, empty when not provided.
func (a Address) Apt() string {
	return a.apt
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state.
func (a Address) State() string {
	return a.state
}

// Zip returns the zip code.
func (a Address) Zip() string {
	return a.zip
}

// String renders the single-line display form used by both order read views:
// "street[, apt], city, state zip".
func (a Address) String() string {
	if a.apt != "" {
		return fmt.Sprintf("%s, %s, %s, %s %s", a.street, a.apt, a.city, a.state, a.zip)
	}
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zip)
}

// IsEqual reports whether two addresses have identical parts.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.apt == other.apt &&
		a.city == other.city &&
		a.state == other.state &&
		a.zip == other.zip
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

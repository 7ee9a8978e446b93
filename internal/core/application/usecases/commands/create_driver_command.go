package commands

import (
	"errors"

	"tastyfood/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverFirstNameIsRequired = errors.New("first name is required")
	ErrDriverLastNameIsRequired  = errors.New("last name is required")
	ErrDriverUsernameIsRequired  = errors.New("username is required")
)

// CreateDriverCommand represents a request to add a new driver to the roster.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Maria", "Santos", "msantos")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	username  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// All three name fields are required.
func NewCreateDriverCommand(firstName, lastName, username string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setUsername(username),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// FirstName returns the new driver's first name.
func (c CreateDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new driver's last name.
func (c CreateDriverCommand) LastName() string {
	return c.lastName
}

// Username returns the new driver's login handle.
func (c CreateDriverCommand) Username() string {
	return c.username
}

func (c *CreateDriverCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrDriverFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateDriverCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrDriverLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateDriverCommand) setUsername(username string) error {
	if username == "" {
		return ErrDriverUsernameIsRequired
	}

	c.username = username
	return nil
}

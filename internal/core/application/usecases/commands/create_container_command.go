package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
)

// CreateContainerCommand represents a request to register a new container in
// the pool with the given weight capacity.
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.UUID
	name        string
	maxWeight   float64

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand creates a command to register a new container.
func NewCreateContainerCommand(containerID kernel.UUID, name string, maxWeight float64) (CreateContainerCommand, error) {
	command := CreateContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContainerID(containerID),
		command.setName(name),
		command.setMaxWeight(maxWeight),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateContainerCommandIsNotConstructed if validation fails.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

// ContainerID returns the unique identifier for the container.
func (c CreateContainerCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// Name returns the container's pool designation.
func (c CreateContainerCommand) Name() string {
	return c.name
}

// MaxWeight returns the container's weight capacity.
func (c CreateContainerCommand) MaxWeight() float64 {
	return c.maxWeight
}

func (c *CreateContainerCommand) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}

func (c *CreateContainerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateContainerCommand) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsRequiredError("maxWeight")
	}

	c.maxWeight = maxWeight
	return nil
}

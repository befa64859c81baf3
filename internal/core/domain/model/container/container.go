package container

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for container operations.
var (
	// ErrNameIsRequired is returned when attempting to create a container without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMaxWeightIsRequired is returned when the weight capacity is not positive.
	ErrMaxWeightIsRequired = errs.NewValueIsRequiredError("maxWeight")
	// ErrContainerIsNotConstructed is returned when using an improperly initialized Container.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Container represents a freight container in the pool. It is an aggregate root
// tracking identity, weight capacity and operational status.
//
// Like vehicles, containers carry no time windows of their own: availability
// over time is derived from the active order bookings referencing them.
//
// Business rules:
//   - Container must have a valid UUID and non-empty name
//   - Weight capacity must be positive
//   - Only non-Broken containers can be booked
type Container struct {
	// id uniquely identifies the container
	id kernel.UUID
	// name is the human-readable pool designation
	name string
	// status is the current operational state
	status Status
	// maxWeight is the weight capacity in mass units
	maxWeight float64
	// guard ensures the container was properly constructed
	guard guard.ConstructorGuard
}

// NewContainer creates a new Available container with the given capacity.
func NewContainer(id kernel.UUID, name string, maxWeight float64) (*Container, error) {
	container := &Container{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		container.setID(id),
		container.setName(name),
		container.setMaxWeight(maxWeight),
	); err != nil {
		return nil, err
	}

	return container, nil
}

// RestoreContainer reconstructs a Container aggregate from persistent storage.
func RestoreContainer(id kernel.UUID, name string, status Status, maxWeight float64) (*Container, error) {
	container := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		container.setID(id),
		container.setName(name),
		container.setMaxWeight(maxWeight),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	container.status = status

	return container, nil
}

// Validate checks if the Container was properly constructed.
// The zero value of Container is invalid and will fail this validation.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// IsEqual compares two containers by their unique identifiers.
func (c *Container) IsEqual(other *Container) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the container's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Name returns the container's pool designation.
func (c *Container) Name() string {
	return c.name
}

// Status returns the container's current operational state.
func (c *Container) Status() Status {
	return c.status
}

// MaxWeight returns the container's weight capacity in mass units.
func (c *Container) MaxWeight() float64 {
	return c.maxWeight
}

// IsSchedulable reports whether the container may be considered for new
// bookings. InUse containers remain schedulable because availability over time
// is decided by the feasible-slot check, not by status alone.
func (c *Container) IsSchedulable() bool {
	return c.status == Available || c.status == InUse
}

// CanHold reports whether the given freight weight fits the capacity.
func (c *Container) CanHold(weight float64) bool {
	return weight >= 0 && weight <= c.maxWeight
}

// Book marks the container as committed to a scheduled order.
// A Broken container cannot be booked.
func (c *Container) Book() error {
	if c.status == Broken {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to book", c.status.String()),
		)
	}

	c.status = InUse
	return nil
}

// Release frees the container. Releasing an Available container is a no-op,
// which keeps resource release idempotent for the lifecycle driver.
func (c *Container) Release() {
	if c.status == InUse {
		c.status = Available
	}
}

// MarkBroken withdraws the container from scheduling.
func (c *Container) MarkBroken() {
	c.status = Broken
}

// setID sets the container's unique identifier with validation.
func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the container's name with validation.
func (c *Container) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setMaxWeight sets the weight capacity with validation.
func (c *Container) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return ErrMaxWeightIsRequired
	}

	c.maxWeight = maxWeight
	return nil
}

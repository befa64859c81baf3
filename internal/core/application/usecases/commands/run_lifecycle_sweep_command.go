package commands

import (
	"errors"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRunLifecycleSweepCommandIsNotConstructed = errors.New(
	"RunLifecycleSweepCommand must be created via NewRunLifecycleSweepCommand constructor",
)

// RunLifecycleSweepCommand represents a request to advance every order whose
// departure or arrival time has passed, and to retry assignment for orders
// still waiting for resources. The sweep evaluates all orders against the
// supplied reference time.
type RunLifecycleSweepCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewRunLifecycleSweepCommand creates a sweep command for the given reference time.
func NewRunLifecycleSweepCommand(now time.Time) (RunLifecycleSweepCommand, error) {
	command := RunLifecycleSweepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNow(now); err != nil {
		return RunLifecycleSweepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunLifecycleSweepCommandIsNotConstructed if validation fails.
func (c RunLifecycleSweepCommand) Validate() error {
	return c.guard.Validate(ErrRunLifecycleSweepCommandIsNotConstructed)
}

// Now returns the reference time orders are evaluated against.
func (c RunLifecycleSweepCommand) Now() time.Time {
	return c.now
}

func (c *RunLifecycleSweepCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}

package commands

import (
	"context"

	"freight/internal/core/domain/model/container"
)

// CreateContainerCommandHandler handles the business logic for container pool
// registration. New containers enter the pool in Available status.
type CreateContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewCreateContainerCommandHandler creates a handler for container registration.
func NewCreateContainerCommandHandler(uowFactory ContainerUoWFactory) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container registration command.
// Uses a transaction to ensure the container is properly persisted or rolled back.
func (h *CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newContainer, err := container.NewContainer(cmd.ContainerID(), cmd.Name(), cmd.MaxWeight())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContainerRepository().Add(ctx, newContainer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

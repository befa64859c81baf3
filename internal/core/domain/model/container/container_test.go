package container_test

import (
	"testing"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(kernel.NewUUID(), "CNT-17", 5000)
	require.NoError(t, err)
	return c
}

func TestNewContainer(t *testing.T) {
	t.Run("should create valid container with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := container.NewContainer(id, "CNT-17", 5000)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "CNT-17", c.Name())
		assert.Equal(t, container.Available, c.Status())
		assert.InDelta(t, 5000.0, c.MaxWeight(), 0)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := container.NewContainer(invalidID, "CNT-17", 5000)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := container.NewContainer(kernel.NewUUID(), "", 5000)

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive max weight", func(t *testing.T) {
		for _, weight := range []float64{0, -100} {
			c, err := container.NewContainer(kernel.NewUUID(), "CNT-17", weight)

			require.Error(t, err)
			assert.Nil(t, c)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestContainer_Validate(t *testing.T) {
	t.Run("nil container is invalid", func(t *testing.T) {
		var c *container.Container

		assert.Equal(t, container.ErrContainerIsNotConstructed, c.Validate())
	})

	t.Run("zero value container is invalid", func(t *testing.T) {
		c := &container.Container{}

		assert.Equal(t, container.ErrContainerIsNotConstructed, c.Validate())
	})
}

func TestContainer_BookAndRelease(t *testing.T) {
	t.Run("available container can be booked", func(t *testing.T) {
		c := newTestContainer(t)

		require.NoError(t, c.Book())
		assert.Equal(t, container.InUse, c.Status())
	})

	t.Run("booking an in-use container keeps it in use", func(t *testing.T) {
		c := newTestContainer(t)
		require.NoError(t, c.Book())

		require.NoError(t, c.Book())
		assert.Equal(t, container.InUse, c.Status())
	})

	t.Run("broken container cannot be booked", func(t *testing.T) {
		c := newTestContainer(t)
		c.MarkBroken()

		require.Error(t, c.Book())
		assert.Equal(t, container.Broken, c.Status())
	})

	t.Run("release frees the container", func(t *testing.T) {
		c := newTestContainer(t)
		require.NoError(t, c.Book())

		c.Release()

		assert.Equal(t, container.Available, c.Status())
	})

	t.Run("release of an available container is idempotent", func(t *testing.T) {
		c := newTestContainer(t)

		c.Release()
		assert.Equal(t, container.Available, c.Status())
	})

	t.Run("release does not recover a broken container", func(t *testing.T) {
		c := newTestContainer(t)
		c.MarkBroken()

		c.Release()
		assert.Equal(t, container.Broken, c.Status())
	})
}

func TestContainer_CanHold(t *testing.T) {
	c := newTestContainer(t)

	assert.True(t, c.CanHold(0))
	assert.True(t, c.CanHold(5000))
	assert.False(t, c.CanHold(5000.1))
	assert.False(t, c.CanHold(-1))
}

func TestContainer_IsSchedulable(t *testing.T) {
	c := newTestContainer(t)
	assert.True(t, c.IsSchedulable())

	require.NoError(t, c.Book())
	assert.True(t, c.IsSchedulable())

	c.MarkBroken()
	assert.False(t, c.IsSchedulable())
}

func TestRestoreContainer(t *testing.T) {
	t.Run("restores container with persisted status", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := container.RestoreContainer(id, "CNT-17", container.InUse, 2000)

		require.NoError(t, err)
		assert.Equal(t, container.InUse, c.Status())
		assert.True(t, c.ID().IsEqual(id))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := container.RestoreContainer(kernel.NewUUID(), "CNT-17", container.StatusUnknown, 2000)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Available", container.Available.String())
		assert.Equal(t, "InUse", container.InUse.String())
		assert.Equal(t, "Broken", container.Broken.String())
		assert.Equal(t, "Unknown", container.StatusUnknown.String())
		assert.Equal(t, "Unknown", container.Status(42).String())
	})

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, container.Available.Validate())
		require.NoError(t, container.InUse.Validate())
		require.NoError(t, container.Broken.Validate())
		require.Error(t, container.StatusUnknown.Validate())
		require.Error(t, container.Status(42).Validate())
	})
}

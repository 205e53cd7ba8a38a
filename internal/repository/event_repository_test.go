//go:build integration

package repository_test

import (
	"context"
	"testing"

	"molle-settlement/internal/repository"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_FindByID(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("WithPackages", func(t *testing.T) {
		setupTestWithTruncate(t)
		hostID := createTestUser(t, "Host", "host@example.com", "HOST")
		eventID := createTestEvent(t, hostID, "Sunburn")
		ga := createTestPackage(t, eventID, "GA", "100.00")
		vip := createTestPackage(t, eventID, "VIP", "250.50")

		event, err := repo.FindByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, hostID, event.HostID)
		require.Len(t, event.Packages, 2)
		assert.Equal(t, ga, event.Packages[0].ID)

		pkg, ok := event.FindPackage(vip)
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("250.50").Equal(pkg.Price))
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByID(ctx, 99999)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_IncrementSoldTickets(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		hostID := createTestUser(t, "Host", "host@example.com", "HOST")
		eventID := createTestEvent(t, hostID, "Sunburn")
		tx := setupTestWithTransaction(t)

		require.NoError(t, repo.IncrementSoldTickets(ctx, tx, eventID, 3))
		require.NoError(t, repo.IncrementSoldTickets(ctx, tx, eventID, 0))

		event, err := repo.FindByIDTx(ctx, tx, eventID)
		require.NoError(t, err)
		assert.Equal(t, 3, event.SoldTickets)
	})

	t.Run("UnknownEvent", func(t *testing.T) {
		setupTestWithTruncate(t)
		tx := setupTestWithTransaction(t)

		err := repo.IncrementSoldTickets(ctx, tx, 99999, 1)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

package database

import (
	"context"
	"testing"

	"gielda-aut/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGetEventsSince(t *testing.T) {
	require.NoError(t, testStore.events().Drop(context.Background()))
	dropCars(t)

	first := insertTestCar(t, "Toyota", 20000)
	second := insertTestCar(t, "Honda", 25000)

	events, err := testStore.GetEventsSince(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, models.EventCarCreated, events[0].Action)
	require.Equal(t, first.ID.Hex(), events[0].CarID)
	require.Equal(t, second.ID.Hex(), events[1].CarID)

	// Kursor odcina starsze zdarzenia.
	newer, err := testStore.GetEventsSince(context.Background(), events[0].ID.Hex())
	require.NoError(t, err)
	require.Len(t, newer, 1)
	require.Equal(t, second.ID.Hex(), newer[0].CarID)

	deleted, err := testStore.DeleteCar(context.Background(), first.ID.Hex(), testOwnerID)
	require.NoError(t, err)
	require.True(t, deleted)

	events, err = testStore.GetEventsSince(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, models.EventCarDeleted, events[2].Action)
}

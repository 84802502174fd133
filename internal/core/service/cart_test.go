package service_test

import (
	"testing"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "sess-1"

type MockCartObserver struct {
	mock.Mock
}

func (o *MockCartObserver) CartChanged(
	sessionID string, change domain.CartChange, snap domain.CartSnapshot,
) {
	o.Called(sessionID, change, snap)
}

func newCartService() *service.CartService {
	catalog := service.NewCatalogService(testCatalog(), nil)
	return service.NewCartService(catalog)
}

func TestCartAdd(t *testing.T) {

	t.Run("RepeatedAddMergesLine", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 1, 2)
		require.NoError(t, err)
		snap, err := s.AddItem(t.Context(), sessionID, 1, 3)
		require.NoError(t, err)

		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 5, snap.Lines[0].Quantity)
		assert.InDelta(t, 5*50.0, snap.TotalPrice, 0)
	})

	t.Run("ComingSoonRejected", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 4, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrComingSoon)
		assert.Zero(t, s.Snapshot(sessionID).ItemCount)
	})

	t.Run("UnknownProductRejected", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 42, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("NonPositiveQuantityClampedToOne", func(t *testing.T) {
		s := newCartService()

		snap, err := s.AddItem(t.Context(), sessionID, 1, -3)
		require.NoError(t, err)
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 1, snap.Lines[0].Quantity)
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 2, 1)
		require.NoError(t, err)
		_, err = s.AddItem(t.Context(), sessionID, 1, 1)
		require.NoError(t, err)
		snap, err := s.AddItem(t.Context(), sessionID, 3, 1)
		require.NoError(t, err)

		require.Len(t, snap.Lines, 3)
		assert.Equal(t, 2, snap.Lines[0].Product.ID)
		assert.Equal(t, 1, snap.Lines[1].Product.ID)
		assert.Equal(t, 3, snap.Lines[2].Product.ID)
	})
}

func TestCartUpdate(t *testing.T) {

	t.Run("SetQuantityRecomputesTotal", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 1, 3)
		require.NoError(t, err)
		snap, err := s.UpdateItem(t.Context(), sessionID, 1, 3)
		require.NoError(t, err)

		assert.InDelta(t, 3*50.0, snap.TotalPrice, 0)
		assert.Equal(t, 3, snap.ItemCount)
	})

	t.Run("ZeroQuantityRemovesLine", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 1, 2)
		require.NoError(t, err)
		snap, err := s.UpdateItem(t.Context(), sessionID, 1, 0)
		require.NoError(t, err)

		assert.Empty(t, snap.Lines)
	})

	t.Run("AbsentLineIsNoop", func(t *testing.T) {
		s := newCartService()

		snap, err := s.UpdateItem(t.Context(), sessionID, 1, 5)
		require.NoError(t, err)
		assert.Empty(t, snap.Lines)
	})
}

func TestCartRemove(t *testing.T) {

	t.Run("RemoveTwiceIsIdempotent", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), sessionID, 1, 1)
		require.NoError(t, err)

		first, err := s.RemoveItem(t.Context(), sessionID, 1)
		require.NoError(t, err)
		second, err := s.RemoveItem(t.Context(), sessionID, 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Empty(t, second.Lines)
	})
}

func TestCartClear(t *testing.T) {
	s := newCartService()

	_, err := s.AddItem(t.Context(), sessionID, 1, 2)
	require.NoError(t, err)
	_, err = s.AddItem(t.Context(), sessionID, 2, 1)
	require.NoError(t, err)

	snap := s.ClearCart(t.Context(), sessionID)
	assert.Zero(t, snap.ItemCount)
	assert.Zero(t, snap.TotalPrice)
	assert.Empty(t, snap.Lines)
}

func TestCartSessionIsolation(t *testing.T) {
	s := newCartService()

	_, err := s.AddItem(t.Context(), "sess-a", 1, 2)
	require.NoError(t, err)

	assert.Zero(t, s.Snapshot("sess-b").ItemCount)
	assert.Equal(t, 2, s.Snapshot("sess-a").ItemCount)
}

func TestCartObservers(t *testing.T) {

	t.Run("NotifiedOnEveryMutation", func(t *testing.T) {
		s := newCartService()
		observer := new(MockCartObserver)
		observer.On("CartChanged",
			sessionID, mock.Anything, mock.Anything).Return()
		s.Subscribe(observer)

		_, err := s.AddItem(t.Context(), sessionID, 1, 1)
		require.NoError(t, err)
		_, err = s.UpdateItem(t.Context(), sessionID, 1, 4)
		require.NoError(t, err)
		_, err = s.RemoveItem(t.Context(), sessionID, 1)
		require.NoError(t, err)
		s.ClearCart(t.Context(), sessionID)

		observer.AssertNumberOfCalls(t, "CartChanged", 4)
	})

	t.Run("NotNotifiedOnNoopRemove", func(t *testing.T) {
		s := newCartService()
		observer := new(MockCartObserver)
		s.Subscribe(observer)

		_, err := s.RemoveItem(t.Context(), sessionID, 1)
		require.NoError(t, err)

		observer.AssertNotCalled(t, "CartChanged",
			mock.Anything, mock.Anything, mock.Anything)
	})
}

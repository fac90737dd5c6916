package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

func TestRecordStoresReplacesWholesale(t *testing.T) {
	s := New()
	s.RecordStores([]types.Store{{ID: "1001"}, {ID: "1002"}})
	s.RecordStores([]types.Store{{ID: "2001"}})

	stores := s.Stores()
	require.Len(t, stores, 1)
	assert.Equal(t, "2001", stores[0].ID)
}

func TestSelectStore(t *testing.T) {
	s := New()
	s.RecordStores([]types.Store{{ID: "1001", Phone: "555-0100"}, {ID: "1002"}})

	t.Run("found in candidate list", func(t *testing.T) {
		st, err := s.SelectStore("1001")
		require.NoError(t, err)
		assert.Equal(t, "555-0100", st.Phone)

		selected, err := s.SelectedStore()
		require.NoError(t, err)
		assert.Equal(t, "1001", selected.ID)
	})

	t.Run("not in candidate list", func(t *testing.T) {
		_, err := s.SelectStore("9999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("last write wins", func(t *testing.T) {
		_, err := s.SelectStore("1002")
		require.NoError(t, err)

		selected, err := s.SelectedStore()
		require.NoError(t, err)
		assert.Equal(t, "1002", selected.ID)
	})
}

func TestSetSelectedStoreAcceptsAnyID(t *testing.T) {
	s := New()
	s.SetSelectedStore(types.Store{ID: "7777"})

	selected, err := s.SelectedStore()
	require.NoError(t, err)
	assert.Equal(t, "7777", selected.ID)
}

func TestMenuRecording(t *testing.T) {
	s := New()

	_, err := s.Menu()
	assert.ErrorIs(t, err, ErrNotFound)

	s.RecordMenu(&types.Menu{StoreID: "1001"})
	menu, err := s.Menu()
	require.NoError(t, err)
	assert.Equal(t, "1001", menu.StoreID)

	// No linkage check against the selected store; replacement is
	// unconditional.
	s.RecordMenu(&types.Menu{StoreID: "1002"})
	menu, err = s.Menu()
	require.NoError(t, err)
	assert.Equal(t, "1002", menu.StoreID)
}

func TestCreateOrderGeneratesUniqueIDs(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.CreateOrder(&types.Order{StoreID: "1001"})
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
}

func TestGetOrder(t *testing.T) {
	s := New()
	id := s.CreateOrder(&types.Order{StoreID: "1001", Method: types.ServiceCarryout})

	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, "1001", order.StoreID)

	_, err = s.GetOrder("no-such-order")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderReturnsCopy(t *testing.T) {
	s := New()
	id := s.CreateOrder(&types.Order{
		StoreID: "1001",
		Items:   []types.Item{{Code: "16SCREEN", Quantity: 1}},
	})

	first, err := s.GetOrder(id)
	require.NoError(t, err)
	first.Items[0].Code = "MUTATED"
	first.Items = append(first.Items, types.Item{Code: "EXTRA", Quantity: 1})

	second, err := s.GetOrder(id)
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "16SCREEN", second.Items[0].Code)
}

func TestUpdateOrder(t *testing.T) {
	s := New()
	id := s.CreateOrder(&types.Order{StoreID: "1001"})

	order, err := s.GetOrder(id)
	require.NoError(t, err)
	order.Items = append(order.Items, types.Item{Code: "16SCREEN", Quantity: 2})
	require.NoError(t, s.UpdateOrder(id, order))

	stored, err := s.GetOrder(id)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)

	err = s.UpdateOrder("no-such-order", order)
	assert.ErrorIs(t, err, ErrNotFound)
}

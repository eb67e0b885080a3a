package storefront

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testProduct(id int) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Test Saree",
		Price:         100,
		OriginalPrice: 150,
		Category:      "Sarees",
	}
}

func TestAddMergesSameProductAndSize(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 1)
	cart.Add(testProduct(1), "M", 2)
	items := cart.Add(testProduct(1), "M", 3)

	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, "M", items[0].Size)
}

func TestAddDistinguishesSizes(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 1)
	items := cart.Add(testProduct(1), "L", 1)

	assert.Len(t, items, 2)
}

func TestAddDefaults(t *testing.T) {
	cart := NewCart(openTestStore(t))

	items := cart.Add(testProduct(1), "", 0)

	require.Len(t, items, 1)
	assert.Equal(t, DefaultSize, items[0].Size)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveAndSetQuantityDefaultSize(t *testing.T) {
	cart := NewCart(openTestStore(t))

	// a line added without a size is addressable without one too
	cart.Add(testProduct(1), "", 2)

	items := cart.SetQuantity(1, "", 5)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	items = cart.Remove(1, "")
	assert.Empty(t, items)
}

func TestItemsIsNeverNil(t *testing.T) {
	cart := NewCart(openTestStore(t))

	assert.NotNil(t, cart.Items())
}

func TestRemoveExactLineOnly(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 1)
	cart.Add(testProduct(1), "L", 1)
	items := cart.Remove(1, "M")

	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].Size)
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 1)
	items := cart.Remove(99, "M")

	assert.Len(t, items, 1)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 2)
	items := cart.SetQuantity(1, "M", 0)

	assert.Empty(t, items)
	assert.Empty(t, cart.Items())
}

func TestSetQuantityOnAbsentLineLeavesCartUnchanged(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 2)
	items := cart.SetQuantity(99, "M", 5)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 2)
	items := cart.SetQuantity(1, "M", 7)

	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestTotalAndCount(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 2) // 2 x 100
	cart.Add(testProduct(2), "L", 3) // 3 x 100
	cart.Add(testProduct(1), "M", 1) // merges to 3 x 100

	assert.Equal(t, 600, cart.Total())
	assert.Equal(t, 6, cart.Count())
}

func TestClear(t *testing.T) {
	cart := NewCart(openTestStore(t))

	cart.Add(testProduct(1), "M", 1)
	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())
}

func TestCartSurvivesReopen(t *testing.T) {
	st := openTestStore(t)

	NewCart(st).Add(testProduct(1), "M", 2)

	again := NewCart(st)
	require.Len(t, again.Items(), 1)
	assert.Equal(t, 2, again.Items()[0].Quantity)
}

package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func TestAddMergesByProductID(t *testing.T) {
	c := New()
	c.Add("p1", "Singing Bowl", price("450"), "/images/bowl.jpg")
	c.Add("p1", "Singing Bowl", price("450"), "/images/bowl.jpg")
	c.Add("p2", "Thangka", price("120"), "/images/thangka.jpg")

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	c := New()
	c.Add("p1", "Singing Bowl", price("450"), "")
	c.Add("p2", "Thangka", price("120"), "")

	c.UpdateQuantity("p1", 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)

	c.UpdateQuantity("p2", -3)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	c := New()
	c.Add("p1", "Singing Bowl", price("450"), "")

	c.UpdateQuantity("p1", 5)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.UpdateQuantity("missing", 3)
	require.Len(t, c.Items, 1)
}

func TestSubtotalSkipsUnpricedLines(t *testing.T) {
	c := New()
	c.Add("p1", "Singing Bowl", price("450"), "")
	c.UpdateQuantity("p1", 2)
	c.Add("p2", "Custom Thangka", decimal.NullDecimal{}, "")
	c.Add("p3", "Prayer Flags", price("10"), "")

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("910")))
	assert.Equal(t, 4, c.Count())
}

func TestSubtotalOnlyUnpricedIsZero(t *testing.T) {
	c := New()
	c.Add("p1", "Custom Statue", decimal.NullDecimal{}, "")

	assert.True(t, c.Subtotal().IsZero())
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add("p1", "Singing Bowl", price("450"), "")
	c.Add("p2", "Thangka", price("120"), "")

	c.Remove("p1")
	require.Len(t, c.Items, 1)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Items)
}

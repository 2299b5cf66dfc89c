package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopconnect/internal/repos"
	"shopconnect/internal/services"
)

func TestFormatDate_NullMarkers(t *testing.T) {
	for _, raw := range []string{"", "-", "0000-00-00", "0000-00-00 00:00:00", "garbage"} {
		assert.Nil(t, services.FormatDate(raw), "raw=%q", raw)
	}
}

func TestFormatDate_Normalizes(t *testing.T) {
	got := services.FormatDate("2023-04-05 10:11:12")
	require.NotNil(t, got)
	assert.Equal(t, "2023-04-05 10:11:12", *got)

	// date-only input gets a midnight time part
	got = services.FormatDate("2023-04-05")
	require.NotNil(t, got)
	assert.Equal(t, "2023-04-05 00:00:00", *got)
}

func TestOrderProjection_ShippingAddressWholeObjectNull(t *testing.T) {
	row := repos.OrderRow{ID: "o1", BillLName: "Meier"}

	proj := services.OrderProjection(row, nil)
	assert.Nil(t, proj.ShippingAddress, "no delivery field set: address must be null as a whole")

	row.DelCity = "Hamburg"
	proj = services.OrderProjection(row, nil)
	require.NotNil(t, proj.ShippingAddress)
	assert.Equal(t, "Hamburg", proj.ShippingAddress.City)
	assert.Empty(t, proj.ShippingAddress.LastName)
}

func TestOrderProjection_DateFieldsNull(t *testing.T) {
	row := repos.OrderRow{
		ID:        "o1",
		OrderDate: "0000-00-00 00:00:00",
		BillDate:  "-",
		PaidDate:  "2023-01-02 03:04:05",
		SendDate:  "",
	}

	proj := services.OrderProjection(row, nil)
	assert.Nil(t, proj.Date)
	assert.Nil(t, proj.BillDate)
	assert.Nil(t, proj.Shipping.Date)
	require.NotNil(t, proj.Payment.Date)
	assert.Equal(t, "2023-01-02 03:04:05", *proj.Payment.Date)
}

func TestOrderProjection_ItemTotalFallsBackToNet(t *testing.T) {
	items := []repos.OrderItemRow{
		{ID: "i1", BrutPrice: 11.90, NetPrice: 10.00},
		{ID: "i2", BrutPrice: 0, NetPrice: 10.00},
	}

	proj := services.OrderProjection(repos.OrderRow{ID: "o1"}, items)
	require.Len(t, proj.OrderItems, 2)
	assert.Equal(t, 11.90, proj.OrderItems[0].Total)
	assert.Equal(t, 10.00, proj.OrderItems[1].Total)
}

func TestOrderProjection_PersParams(t *testing.T) {
	items := []repos.OrderItemRow{
		{ID: "i1", PersParams: `{"engraving":"hello"}`},
		{ID: "i2"},
	}

	proj := services.OrderProjection(repos.OrderRow{ID: "o1"}, items)
	assert.Equal(t, map[string]any{"engraving": "hello"}, proj.OrderItems[0].PersParams)
	assert.Equal(t, []any{}, proj.OrderItems[1].PersParams)
}

func TestOrderProjection_CustomerNo(t *testing.T) {
	proj := services.OrderProjection(repos.OrderRow{ID: "o1", CustNo: 4711}, nil)
	require.NotNil(t, proj.BillingAddress)
	assert.Equal(t, 4711, proj.BillingAddress.CustomerNo)
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopconnect/internal/services"
)

func TestNewTermSet_EmptyInputs(t *testing.T) {
	for _, raw := range []any{nil, "", "   ", []any{}, []any{"", "  "}} {
		_, err := services.NewTermSet(raw)
		require.Error(t, err, "raw=%v", raw)
		apiErr := services.AsAPIError(err)
		assert.Equal(t, 0, apiErr.Code)
		assert.Equal(t, "Empty search term", apiErr.Message)
	}
}

func TestNewTermSet_Classification(t *testing.T) {
	set, err := services.NewTermSet(" 12345 ")
	require.NoError(t, err)
	assert.True(t, set.DigitsOnly)
	assert.Equal(t, 5, set.MaxLen)
	assert.Equal(t, []string{"12345"}, set.Terms)

	set, err = services.NewTermSet("ABC")
	require.NoError(t, err)
	assert.False(t, set.DigitsOnly)

	// a single non-digit term taints the whole set
	set, err = services.NewTermSet([]any{"123", "Meier"})
	require.NoError(t, err)
	assert.False(t, set.DigitsOnly)
	assert.Equal(t, 5, set.MaxLen)

	// numbers arrive as float64 from JSON decoding
	set, err = services.NewTermSet(float64(4711))
	require.NoError(t, err)
	assert.True(t, set.DigitsOnly)
	assert.Equal(t, []string{"4711"}, set.Terms)
}

func TestTermSet_Match(t *testing.T) {
	set, err := services.NewTermSet("4711")
	require.NoError(t, err)
	m := set.Match()
	assert.Equal(t, "= ?", m.Clause)
	assert.Equal(t, []any{"4711"}, m.Args)

	set, err = services.NewTermSet([]any{"4711", "4712"})
	require.NoError(t, err)
	m = set.Match()
	assert.Equal(t, "IN (?, ?)", m.Clause)
	assert.Equal(t, []any{"4711", "4712"}, m.Args)
}

func TestOrderSearchClause_DigitsWithZipHeuristic(t *testing.T) {
	set, err := services.NewTermSet("12345")
	require.NoError(t, err)

	cond := services.OrderSearchClause(set, "", nil)
	assert.Equal(t, "o.order_no = ? OR o.bill_no = ? OR o.bill_zip = ? OR o.del_zip = ?", cond.Clause)
	assert.Len(t, cond.Args, 4)
}

func TestOrderSearchClause_DigitsWithoutZip(t *testing.T) {
	// max length 4: no zip columns
	set, err := services.NewTermSet("4711")
	require.NoError(t, err)

	cond := services.OrderSearchClause(set, "", nil)
	assert.Equal(t, "o.order_no = ? OR o.bill_no = ?", cond.Clause)
	assert.Len(t, cond.Args, 2)
}

func TestOrderSearchClause_CustomerMatchAppended(t *testing.T) {
	set, err := services.NewTermSet("4711")
	require.NoError(t, err)

	cond := services.OrderSearchClause(set, "", services.CustomerIDMatch([]string{"cust-1"}))
	assert.Equal(t, "o.order_no = ? OR o.bill_no = ? OR o.user_id = ?", cond.Clause)
	assert.Equal(t, []any{"4711", "4711", "cust-1"}, cond.Args)

	cond = services.OrderSearchClause(set, "", services.CustomerIDMatch([]string{"cust-1", "cust-2"}))
	assert.Contains(t, cond.Clause, "o.user_id IN (?, ?)")
}

func TestCustomerIDMatch_EmptyOmitsClause(t *testing.T) {
	assert.Nil(t, services.CustomerIDMatch(nil))
}

func TestOrderSearchClause_NonDigits(t *testing.T) {
	set, err := services.NewTermSet("Meier")
	require.NoError(t, err)

	// the customer sub-match never applies to non-digit searches
	cond := services.OrderSearchClause(set, "", nil)
	assert.Equal(t, "o.bill_city = ? OR o.del_city = ? OR o.bill_lname = ? OR o.del_lname = ?", cond.Clause)
}

func TestOrderSearchClause_ExplicitTypes(t *testing.T) {
	set, err := services.NewTermSet("x")
	require.NoError(t, err)

	cases := map[string]string{
		"orderid":    "o.id = ?",
		"customerid": "o.user_id = ?",
		"email":      "o.bill_email = ?",
		"orderno":    "o.order_no = ?",
	}
	for searchType, want := range cases {
		cond := services.OrderSearchClause(set, searchType, nil)
		assert.Equal(t, want, cond.Clause, searchType)
	}
}

func TestScopeToShop(t *testing.T) {
	cond := services.ScopeToShop(services.Condition{Clause: "o.order_no = ?", Args: []any{"4711"}}, "o.shop_id", "2")
	assert.Equal(t, "o.shop_id = ? AND (o.order_no = ?)", cond.Clause)
	assert.Equal(t, []any{"2", "4711"}, cond.Args)
}

package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopconnect/internal/repos"
	"shopconnect/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.MustExec(`INSERT INTO shops(id,name,edition,version,revision,url,ssl_url) VALUES
	  ('2','Subshop','EE','6.2.4','r2','http://sub.local/','https://sub.local/')`)
	return db
}

func newService(t *testing.T, db *sqlx.DB, shopID string) *services.ConnectService {
	t.Helper()
	return services.NewConnectService(
		shopID,
		repos.NewOrderRepo(db),
		repos.NewCustomerRepo(db),
		repos.NewCatalogRepo(db),
		repos.NewShopRepo(db),
		services.NewSettingsService(repos.NewSettingsRepo(db)),
	)
}

func TestGetOrder_OtherShopReturnsNull(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no) VALUES ('ord-1', 'oxbaseshop', 100)`)

	// shop "2" is scope-restricted and may not see the base shop's order
	svc := newService(t, db, "2")
	order, err := svc.GetOrder("ord-1")
	require.NoError(t, err)
	assert.Nil(t, order)

	// the base shop sees everything
	svc = newService(t, db, "oxbaseshop")
	order, err = svc.GetOrder("ord-1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, 100, order.OrderNo)
}

func TestGetOrder_MissingOrBlankID(t *testing.T) {
	db := memdb(t)
	svc := newService(t, db, "oxbaseshop")

	order, err := svc.GetOrder("no-such-order")
	require.NoError(t, err)
	assert.Nil(t, order)

	order, err = svc.GetOrder("")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestSearch_EmptyTermIsDomainError(t *testing.T) {
	db := memdb(t)
	svc := newService(t, db, "oxbaseshop")

	_, err := svc.SearchCustomersAndOrders([]any{""}, "")
	require.Error(t, err)
	apiErr := services.AsAPIError(err)
	assert.Equal(t, 0, apiErr.Code)
	assert.Equal(t, "Empty search term", apiErr.Message)
}

func TestSearch_DigitsMatchesCustomerNumber(t *testing.T) {
	db := memdb(t)
	require.NoError(t, repos.SeedCustomer(db, "cust-1", "oxbaseshop", 70777, "meier@example.test", "Hans", "Meier", "Passw0rd!"))
	db.MustExec(`INSERT INTO orders(id, shop_id, user_id, order_no) VALUES ('ord-1', 'oxbaseshop', 'cust-1', 100)`)
	db.MustExec(`INSERT INTO orders(id, shop_id, user_id, order_no) VALUES ('ord-2', 'oxbaseshop', 'other', 101)`)

	svc := newService(t, db, "oxbaseshop")
	orders, err := svc.SearchCustomersAndOrders("70777", "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
	assert.Equal(t, 70777, orders[0].BillingAddress.CustomerNo)
}

func TestSearch_ZipMatchAtLengthFive(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, bill_zip) VALUES ('ord-1', 'oxbaseshop', 100, '20095')`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, del_zip) VALUES ('ord-2', 'oxbaseshop', 101, '20095')`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, bill_zip) VALUES ('ord-3', 'oxbaseshop', 102, '99999')`)

	svc := newService(t, db, "oxbaseshop")
	orders, err := svc.SearchCustomersAndOrders("20095", "")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestSearch_NonDigitsMatchesNames(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, bill_lname) VALUES ('ord-1', 'oxbaseshop', 100, 'Meier')`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, del_city) VALUES ('ord-2', 'oxbaseshop', 101, 'Meier')`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no, bill_email) VALUES ('ord-3', 'oxbaseshop', 102, 'Meier')`)

	svc := newService(t, db, "oxbaseshop")
	orders, err := svc.SearchCustomersAndOrders("Meier", "")
	require.NoError(t, err)
	assert.Len(t, orders, 2, "email column is not part of the auto-detect name search")
}

func TestSearch_ScopeRestrictsSubshop(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no) VALUES ('ord-1', 'oxbaseshop', 100)`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no) VALUES ('ord-2', '2', 100)`)

	svc := newService(t, db, "2")
	orders, err := svc.SearchCustomersAndOrders("100", "orderno")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-2", orders[0].ID)
}

func TestSearch_ShopOneWithSubshopsSeesAll(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO shops(id,name) VALUES ('1','Main Shop')`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no) VALUES ('ord-1', '1', 100)`)
	db.MustExec(`INSERT INTO orders(id, shop_id, order_no) VALUES ('ord-2', '2', 100)`)

	svc := newService(t, db, "1")

	// without the flag, shop "1" is restricted like any subshop
	orders, err := svc.SearchCustomersAndOrders("100", "orderno")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.NoError(t, repos.NewSettingsRepo(db).Put(repos.SettingsModule, "includeSubshops", "1", "1"))
	orders, err = svc.SearchCustomersAndOrders("100", "orderno")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestAllShops_UnscopedAndSideEffectFree(t *testing.T) {
	db := memdb(t)
	svc := newService(t, db, "2")

	before, err := svc.ActiveShop()
	require.NoError(t, err)

	shops, err := svc.AllShops()
	require.NoError(t, err)
	require.Len(t, shops, 2, "getShops lists every shop regardless of scope")
	assert.Equal(t, "https://demoshop.local/", shops["oxbaseshop"].SSLURL)
	assert.Equal(t, "http://sub.local/", shops["2"].URL)

	after, err := svc.ActiveShop()
	require.NoError(t, err)
	assert.Equal(t, before, after, "listing shops must not move the active shop")
	assert.Equal(t, "2", after.ID)
}

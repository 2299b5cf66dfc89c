package services

import (
	"shopconnect/internal/domain"
	"shopconnect/internal/repos"
)

// baseShopID is the root shop of a single-shop installation; it is never
// scope-restricted. In multi-shop installs shop "1" plays that role when the
// includeSubshops setting is enabled.
const baseShopID = "oxbaseshop"

// ConnectService implements the eight read operations of the gateway over
// the repositories. ShopID is the tenant this process answers for.
type ConnectService struct {
	ShopID    string
	Orders    *repos.OrderRepo
	Customers *repos.CustomerRepo
	Catalog   *repos.CatalogRepo
	Shops     *repos.ShopRepo
	Settings  *SettingsService
}

func NewConnectService(shopID string, orders *repos.OrderRepo, customers *repos.CustomerRepo, catalog *repos.CatalogRepo, shops *repos.ShopRepo, settings *SettingsService) *ConnectService {
	return &ConnectService{
		ShopID:    shopID,
		Orders:    orders,
		Customers: customers,
		Catalog:   catalog,
		Shops:     shops,
		Settings:  settings,
	}
}

func (s *ConnectService) limitToShop() (bool, error) {
	if s.ShopID == baseShopID {
		return false, nil
	}
	if s.ShopID == "1" {
		include, err := s.Settings.IncludeSubshops(s.ShopID)
		if err != nil {
			return false, err
		}
		if include {
			return false, nil
		}
	}
	return true, nil
}

// SearchCustomersAndOrders resolves a term set against the order store.
// rawTerm is the undecoded searchTerm param (string or list); searchType
// optionally pins the matched column.
func (s *ConnectService) SearchCustomersAndOrders(rawTerm any, searchType string) ([]*domain.Order, error) {
	terms, err := NewTermSet(rawTerm)
	if err != nil {
		return nil, err
	}

	limit, err := s.limitToShop()
	if err != nil {
		return nil, err
	}

	// Digits-only auto-detect also matches orders owned by customers whose
	// customer number matches; resolved via a separate id lookup so the
	// clause is omitted entirely when nothing matches.
	var customerMatch *Condition
	if !isExplicitSearchType(searchType) && terms.DigitsOnly {
		custCond := FieldMatch(terms.Match(), "cust_no")
		if limit {
			custCond = ScopeToShop(custCond, "shop_id", s.ShopID)
		}
		ids, err := s.Customers.IDsByCustomerNumber(custCond.Clause, custCond.Args)
		if err != nil {
			return nil, err
		}
		customerMatch = CustomerIDMatch(ids)
	}

	cond := OrderSearchClause(terms, searchType, customerMatch)
	if limit {
		cond = ScopeToShop(cond, "o.shop_id", s.ShopID)
	}

	rows, err := s.Orders.Search(cond.Clause, cond.Args)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Order, 0, len(rows))
	for _, row := range rows {
		items, err := s.Orders.Items(row.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OrderProjection(row, items))
	}
	return result, nil
}

// GetOrder loads one order by id. Returns nil (not an error) when the order
// does not exist or belongs to another shop under scope restriction.
func (s *ConnectService) GetOrder(orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, nil
	}

	row, err := s.Orders.Get(orderID)
	if err != nil || row == nil {
		return nil, err
	}

	limit, err := s.limitToShop()
	if err != nil {
		return nil, err
	}
	if limit && row.ShopID != s.ShopID {
		return nil, nil
	}

	items, err := s.Orders.Items(row.ID)
	if err != nil {
		return nil, err
	}
	return OrderProjection(*row, items), nil
}

func (s *ConnectService) PaymentMethods() (map[string]domain.PaymentMethod, error) {
	rows, err := s.Catalog.PaymentMethods()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.PaymentMethod, len(rows))
	for _, r := range rows {
		out[r.ID] = domain.PaymentMethod{ID: r.ID, Active: r.Active, Title: r.Title}
	}
	return out, nil
}

func (s *ConnectService) ShippingMethods() (map[string]domain.ShippingMethod, error) {
	rows, err := s.Catalog.ShippingMethods()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.ShippingMethod, len(rows))
	for _, r := range rows {
		out[r.ID] = domain.ShippingMethod{ID: r.ID, ShopID: r.ShopID, Active: r.Active, Title: r.Title}
	}
	return out, nil
}

func (s *ConnectService) Countries() (map[string]domain.Country, error) {
	rows, err := s.Catalog.Countries()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Country, len(rows))
	for _, r := range rows {
		out[r.ID] = domain.Country{ID: r.ID, Active: r.Active, Title: r.Title, ISO2: r.ISO2, ISO3: r.ISO3}
	}
	return out, nil
}

func (s *ConnectService) States() (map[string]domain.State, error) {
	rows, err := s.Catalog.States()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.State, len(rows))
	for _, r := range rows {
		out[r.ID] = domain.State{ID: r.ID, CountryID: r.CountryID, Title: r.Title, ISO2: r.ISO2}
	}
	return out, nil
}

// AllShops lists every shop in the installation, never scope-restricted.
// URL and revision fields come from each shop's own row, so no shared
// active-shop context is touched.
func (s *ConnectService) AllShops() (map[string]domain.Shop, error) {
	rows, err := s.Shops.All()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Shop, len(rows))
	for _, r := range rows {
		out[r.ID] = shopProjection(r)
	}
	return out, nil
}

func (s *ConnectService) ActiveShop() (*domain.Shop, error) {
	row, err := s.Shops.Get(s.ShopID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewAPIError(0, "Unknown shop: "+s.ShopID)
	}
	shop := shopProjection(*row)
	return &shop, nil
}

func shopProjection(r repos.ShopRow) domain.Shop {
	return domain.Shop{
		ID:       r.ID,
		Title:    r.Name,
		Edition:  r.Edition,
		Version:  r.Version,
		Revision: r.Revision,
		URL:      r.URL,
		SSLURL:   r.SSLURL,
	}
}

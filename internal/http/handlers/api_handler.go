package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"shopconnect/internal/domain"
	applog "shopconnect/internal/log"
	"shopconnect/internal/services"
)

// rpcHandler answers one method; params is the decoded params object.
type rpcHandler func(params map[string]json.RawMessage) (any, error)

// methodNames is the declared method set of the gateway. The dispatch table
// is checked against it at construction so the two cannot drift.
var methodNames = []string{
	"searchCustomersAndOrders",
	"getOrder",
	"getPaymentMethods",
	"getShippingMethods",
	"getCountries",
	"getStates",
	"getShops",
	"getActiveShop",
}

type APIHandler struct {
	Connect  *services.ConnectService
	Settings *services.SettingsService
	ShopID   string
	dispatch map[string]rpcHandler
}

func NewAPIHandler(connect *services.ConnectService, settings *services.SettingsService, shopID string) *APIHandler {
	h := &APIHandler{Connect: connect, Settings: settings, ShopID: shopID}

	h.dispatch = map[string]rpcHandler{
		"searchCustomersAndOrders": h.searchCustomersAndOrders,
		"getOrder":                 h.getOrder,
		"getPaymentMethods": func(map[string]json.RawMessage) (any, error) {
			return connect.PaymentMethods()
		},
		"getShippingMethods": func(map[string]json.RawMessage) (any, error) {
			return connect.ShippingMethods()
		},
		"getCountries": func(map[string]json.RawMessage) (any, error) {
			return connect.Countries()
		},
		"getStates": func(map[string]json.RawMessage) (any, error) {
			return connect.States()
		},
		"getShops": func(map[string]json.RawMessage) (any, error) {
			return connect.AllShops()
		},
		"getActiveShop": func(map[string]json.RawMessage) (any, error) {
			shop, err := connect.ActiveShop()
			if err != nil {
				return nil, err
			}
			return shop, nil
		},
	}

	if len(h.dispatch) != len(methodNames) {
		panic("api: dispatch table does not match declared method set")
	}
	for _, name := range methodNames {
		if _, ok := h.dispatch[name]; !ok {
			panic("api: method not registered: " + name)
		}
	}

	return h
}

// Serve is the single gateway endpoint. Every request gets exactly one
// well-formed envelope back, always with HTTP 200; failures travel in-body.
func (h *APIHandler) Serve(c *fiber.Ctx) error {
	result, err := h.process(c)
	if err != nil {
		apiErr := services.AsAPIError(err)
		if apiErr.Code == 0 {
			applog.Error(c, "api.fail", err, nil)
		} else {
			applog.Security(c, "api.reject", apiErr.Code, nil)
		}
		return c.JSON(domain.Envelope{
			Version: "1.1",
			Error:   &domain.RPCError{Name: "Exception", Code: apiErr.Code, Message: apiErr.Message},
		})
	}
	return c.JSON(domain.Envelope{Version: "1.1", Result: result})
}

func (h *APIHandler) process(c *fiber.Ctx) (any, error) {
	apiKey, allowNonSsl, err := h.Settings.APIAccess(h.ShopID)
	if err != nil {
		return nil, err
	}

	// Transport check comes before anything request-derived.
	if !isSecure(c) && !allowNonSsl {
		return nil, services.NewAPIError(403, "Non-SSL connections are not allowed")
	}

	raw := c.FormValue("request")
	if raw == "" {
		raw = c.Query("request")
	}
	if len(raw) < 1 {
		return nil, services.NewAPIError(400, "Empty request")
	}

	// The envelope must be a JSON object; arrays, scalars and malformed
	// documents are all invalid.
	var req map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &req); err != nil || req == nil {
		return nil, services.NewAPIError(400, "Invalid request")
	}

	if err := checkAuth(req, apiKey); err != nil {
		return nil, err
	}

	var method string
	if rawMethod, ok := req["method"]; ok {
		_ = json.Unmarshal(rawMethod, &method)
	}
	if method == "" {
		return nil, services.NewAPIError(406, "Invalid method")
	}

	params := map[string]json.RawMessage{}
	if rawParams, ok := req["params"]; ok && string(rawParams) != "null" {
		if err := json.Unmarshal(rawParams, &params); err != nil || params == nil {
			return nil, services.NewAPIError(400, "Invalid params")
		}
	}

	fn, ok := h.dispatch[method]
	if !ok {
		return nil, services.NewAPIError(406, "Invalid method")
	}

	// Authenticated calls are audit-logged before dispatch.
	applog.Audit(c, "api.call", map[string]any{"rpc": method})
	return fn(params)
}

func checkAuth(req map[string]json.RawMessage, apiKey string) error {
	rawAuth, ok := req["auth"]
	if !ok {
		return services.NewAPIError(401, "Missing api key")
	}
	var auth string
	_ = json.Unmarshal(rawAuth, &auth)
	if auth == "" {
		return services.NewAPIError(401, "Empty api key is not allowed")
	}
	// No configured key means nothing can authenticate.
	if apiKey == "" || auth != apiKey {
		return services.NewAPIError(401, "Authentication failed (invalid api key)")
	}
	return nil
}

func isSecure(c *fiber.Ctx) bool {
	return c.Secure() || c.Get("X-Forwarded-Proto") == "https"
}

func (h *APIHandler) searchCustomersAndOrders(params map[string]json.RawMessage) (any, error) {
	var term any
	if raw, ok := params["searchTerm"]; ok {
		_ = json.Unmarshal(raw, &term)
	}
	return h.Connect.SearchCustomersAndOrders(term, stringParam(params, "searchType"))
}

func (h *APIHandler) getOrder(params map[string]json.RawMessage) (any, error) {
	order, err := h.Connect.GetOrder(stringParam(params, "orderId"))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return order, nil
}

func stringParam(params map[string]json.RawMessage, name string) string {
	var s string
	if raw, ok := params[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

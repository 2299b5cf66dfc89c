package services

import (
	"encoding/json"
	"strings"
	"time"

	"shopconnect/internal/domain"
	"shopconnect/internal/repos"
)

const dateLayout = "2006-01-02 15:04:05"

var dateInputLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// FormatDate normalizes a stored date to "YYYY-MM-DD HH:MM:SS". Placeholder
// values ("", "-", zero dates) and unparseable input map to nil, never to a
// sentinel string.
func FormatDate(raw string) *string {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "-", "0000-00-00", "0000-00-00 00:00:00":
		return nil
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			s := t.Format(dateLayout)
			return &s
		}
	}
	return nil
}

// OrderProjection flattens an order row and its line items into the wire
// shape. Total and deterministic: every field of the projection is assigned.
func OrderProjection(row repos.OrderRow, items []repos.OrderItemRow) *domain.Order {
	o := &domain.Order{
		ID:              row.ID,
		ShopID:          row.ShopID,
		CustomerID:      row.UserID,
		Date:            FormatDate(row.OrderDate),
		Cancelled:       row.Cancelled,
		State:           row.TransStatus,
		OrderNo:         row.OrderNo,
		OrderTotal:      row.TotalOrderSum,
		OrderTotalNet:   row.TotalNetSum,
		OrderTotalGross: row.TotalBrutSum,
		Currency:        row.Currency,
		CurrencyRate:    row.CurrencyRate,
		NetMode:         row.NetMode,
		Vat:             row.ArtVat1,
		VatTotal:        row.ArtVatPrice1,
		Vat2:            row.ArtVat2,
		Vat2Total:       row.ArtVatPrice2,
		Discount:        row.Discount,
		VoucherDiscount: row.VoucherDiscount,
		BillNo:          row.BillNo,
		BillDate:        FormatDate(row.BillDate),
		InvoiceNo:       row.InvoiceNo,
		Remark:          row.Remark,
	}

	o.BillingAddress = &domain.BillingAddress{
		Company:    row.BillCompany,
		Email:      row.BillEmail,
		FirstName:  row.BillFName,
		LastName:   row.BillLName,
		Street:     row.BillStreet,
		StreetNo:   row.BillStreetNo,
		AddInfo:    row.BillAddInfo,
		City:       row.BillCity,
		ZipCode:    row.BillZip,
		VatID:      row.BillUstID,
		CountryID:  row.BillCountryID,
		StateID:    row.BillStateID,
		Phone:      row.BillFon,
		Fax:        row.BillFax,
		Salutation: row.BillSal,
		CustomerNo: row.CustNo,
	}

	o.ShippingAddress = shippingAddress(row)

	o.Payment = domain.Payment{
		ID:            row.PaymentType,
		Date:          FormatDate(row.PaidDate),
		Cost:          row.PayCost,
		Vat:           row.PayVat,
		TransactionID: row.TransID,
	}

	o.Shipping = domain.Shipping{
		ID:           row.DelType,
		Cost:         row.DelCost,
		Vat:          row.DelVat,
		Date:         FormatDate(row.SendDate),
		TrackingCode: row.TrackCode,
	}

	o.Wrapping = domain.Wrapping{Cost: row.WrapCost, Vat: row.WrapVat}

	o.GiftCard = domain.GiftCard{
		Cost: row.GiftCardCost,
		Vat:  row.GiftCardVat,
		ID:   row.CardID,
		Text: row.CardText,
	}

	o.OrderItems = make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		total := it.BrutPrice
		if total == 0 {
			total = it.NetPrice
		}
		o.OrderItems = append(o.OrderItems, domain.OrderItem{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Amount,
			ItemNo:           it.ArtNum,
			Title:            it.Title,
			ShortDescription: it.ShortDesc,
			Total:            total,
			Price:            it.Price,
			Vat:              it.Vat,
			VatTotal:         it.VatPrice,
			Cancelled:        it.Cancelled,
			Bundle:           it.Bundle,
			Variant:          it.SelVariant,
			PersParams:       persParams(it.PersParams),
		})
	}

	return o
}

// shippingAddress returns nil when no distinct delivery address was recorded,
// a whole-object rule: one non-empty field keeps the address.
func shippingAddress(row repos.OrderRow) *domain.ShippingAddress {
	addr := domain.ShippingAddress{
		Company:    row.DelCompany,
		FirstName:  row.DelFName,
		LastName:   row.DelLName,
		Street:     row.DelStreet,
		StreetNo:   row.DelStreetNo,
		AddInfo:    row.DelAddInfo,
		City:       row.DelCity,
		ZipCode:    row.DelZip,
		CountryID:  row.DelCountryID,
		StateID:    row.DelStateID,
		Phone:      row.DelFon,
		Fax:        row.DelFax,
		Salutation: row.DelSal,
	}
	if addr == (domain.ShippingAddress{}) {
		return nil
	}
	return &addr
}

func persParams(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil && v != nil {
			return v
		}
	}
	return []any{}
}

// Package views maps order data onto display-ready view models. Builders
// are pure: they never touch the network or the rendering surface, so the
// host adapter decides how the result is painted.
package views

import (
	"strconv"

	"finitefield.org/orderview/internal/orderview/orders"
)

// defaultStatus is shown in the header when the order has no items.
const defaultStatus = "PENDING"

// placeholder is substituted for absent field values.
const placeholder = "-"

// Field is a single label/value pair inside a grouped block.
type Field struct {
	Label string
	Value string
}

// OrderView is the display model for the order detail page.
type OrderView struct {
	Title    string
	Track    string
	Entry    string
	Date     string
	Amount   string
	Status   string
	Overview []Field
	Delivery []Field
	Payment  []Field
	Items    []ItemView
}

// ItemView is the display model for a single 1-indexed order line.
type ItemView struct {
	Index    int
	Name     string
	Brand    string
	Price    string
	Quantity int
	Total    string
	Status   string
}

// BuildOrderView converts an order payload into its display model.
func BuildOrderView(order *orders.Order) OrderView {
	if order == nil {
		order = &orders.Order{}
	}

	payment := order.Payment
	if payment == nil {
		payment = &orders.Payment{}
	}
	cur := payment.Currency

	view := OrderView{
		Title:  "Order · " + fallback(order.OrderUID, "—"),
		Track:  fallback(order.TrackNumber, "—"),
		Entry:  fallback(order.Entry, "—"),
		Date:   fallback(order.DateCreated, "—"),
		Amount: Money(payment.Amount, cur),
		Status: headerStatus(order.Items),
		Overview: []Field{
			{Label: "Locale", Value: fallback(order.Locale, placeholder)},
			{Label: "Customer ID", Value: fallback(order.CustomerID, placeholder)},
			{Label: "Delivery Service", Value: fallback(order.DeliveryService, placeholder)},
			{Label: "Internal Signature", Value: fallback(order.InternalSignature, "N/A")},
		},
		Delivery: deliveryFields(order.Delivery),
		Payment: []Field{
			{Label: "Transaction ID", Value: fallback(payment.Transaction, placeholder)},
			{Label: "Provider", Value: fallback(payment.Provider, placeholder)},
			{Label: "Bank", Value: fallback(payment.Bank, placeholder)},
			{Label: "Amount", Value: Money(payment.Amount, cur)},
			{Label: "Delivery Cost", Value: Money(payment.DeliveryCost, cur)},
			{Label: "Goods Total", Value: Money(payment.GoodsTotal, cur)},
			{Label: "Custom Fee", Value: Money(payment.CustomFee, cur)},
		},
	}

	for i, item := range order.Items {
		view.Items = append(view.Items, ItemView{
			Index:    i + 1,
			Name:     fallback(item.Name, "Item"),
			Brand:    fallback(item.Brand, placeholder),
			Price:    Money(item.Price, cur),
			Quantity: quantity(item.Sale),
			Total:    Money(item.TotalPrice, cur),
			Status:   itemStatus(item.Status),
		})
	}
	return view
}

func deliveryFields(delivery *orders.Delivery) []Field {
	if delivery == nil {
		delivery = &orders.Delivery{}
	}
	return []Field{
		{Label: "Name", Value: fallback(delivery.Name, placeholder)},
		{Label: "Phone", Value: fallback(delivery.Phone, placeholder)},
		{Label: "Email", Value: fallback(delivery.Email, placeholder)},
		{Label: "Address", Value: fallback(delivery.Address, placeholder)},
		{Label: "City", Value: fallback(delivery.City, placeholder)},
		{Label: "ZIP", Value: fallback(delivery.Zip, placeholder)},
		{Label: "Region", Value: fallback(delivery.Region, placeholder)},
	}
}

func headerStatus(items []orders.Item) string {
	if len(items) == 0 || items[0].Status == nil {
		return defaultStatus
	}
	return strconv.Itoa(*items[0].Status)
}

func itemStatus(status *int) string {
	if status == nil {
		return "—"
	}
	return strconv.Itoa(*status)
}

func quantity(sale *int) int {
	if sale == nil {
		return 1
	}
	return *sale
}

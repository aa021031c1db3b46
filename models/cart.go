package models

import "fmt"

// PackageOptionLabel is the display label used for whole-package line items.
const PackageOptionLabel = "Complete Package"

// CartLineItem is one selected service option or whole package.
// The ID is derived from the selection and is NOT unique within a cart:
// adding the same option twice yields two line items sharing an ID.
type CartLineItem struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"serviceName"`
	OptionName  string  `json:"optionName"`
	Price       float64 `json:"price"`
}

// Cart is an ordered list of line items held by a single browsing session.
// Insertion order is display order.
type Cart struct {
	ID    string         `json:"id"`
	Items []CartLineItem `json:"items"`
}

// AddServiceItem appends a line item for the given service option,
// capturing the option's price at the time of addition.
func (c *Cart) AddServiceItem(svc *Service, opt *Option) CartLineItem {
	item := CartLineItem{
		ID:          fmt.Sprintf("%s-%s", svc.ID, opt.ID),
		ServiceName: svc.Name,
		OptionName:  opt.Name,
		Price:       opt.Price,
	}
	c.Items = append(c.Items, item)
	return item
}

// AddPackageItem appends a line item for the given package.
func (c *Cart) AddPackageItem(pkg *Package) CartLineItem {
	item := CartLineItem{
		ID:          fmt.Sprintf("package-%s", pkg.ID),
		ServiceName: pkg.Name,
		OptionName:  PackageOptionLabel,
		Price:       pkg.Price,
	}
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem removes the first line item with the given ID and reports
// whether an item was removed. Later duplicates are kept.
func (c *Cart) RemoveItem(lineItemID string) bool {
	for i, item := range c.Items {
		if item.ID == lineItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total returns the sum of all line item prices. Zero for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// Clear removes all line items.
func (c *Cart) Clear() {
	c.Items = nil
}

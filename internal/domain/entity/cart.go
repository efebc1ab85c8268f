package entity

import (
	"slices"
	"time"
)

// Cart is the ordered collection of line items owned by one client.
type Cart struct {
	ClientID  string     `json:"clientId"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}

	return count
}

// IndexOf returns the position of the line with the given key, or -1.
func (c *Cart) IndexOf(key LineKey) int {
	return slices.IndexFunc(c.Items, func(li LineItem) bool {
		return li.Key() == key
	})
}

// Clone returns a copy that shares no slices with c.
func (c Cart) Clone() Cart {
	c.Items = slices.Clone(c.Items)
	if c.Items == nil {
		c.Items = []LineItem{}
	}

	return c
}

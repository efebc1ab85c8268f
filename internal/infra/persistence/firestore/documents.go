package firestore

import (
	"time"

	"storefront/internal/domain/entity"
)

// Field names used in queries.
const (
	fieldUserID    = "userId"
	fieldStatus    = "status"
	fieldTotal     = "total"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
	fieldCategory  = "category"
)

type addressDoc struct {
	FullName   string `firestore:"fullName"`
	Line1      string `firestore:"line1"`
	Line2      string `firestore:"line2,omitempty"`
	City       string `firestore:"city"`
	State      string `firestore:"state,omitempty"`
	PostalCode string `firestore:"postalCode"`
	Country    string `firestore:"country"`
	Phone      string `firestore:"phone,omitempty"`
}

type orderItemDoc struct {
	ProductID string  `firestore:"productId"`
	Name      string  `firestore:"name"`
	UnitPrice float64 `firestore:"unitPrice"`
	Quantity  int     `firestore:"quantity"`
	ImageURL  string  `firestore:"imageUrl,omitempty"`
	Size      string  `firestore:"size,omitempty"`
	Color     string  `firestore:"color,omitempty"`
}

// orderDoc is the shape of orders/{id}. The id lives in the document path.
type orderDoc struct {
	UserID            string         `firestore:"userId"`
	UserEmail         string         `firestore:"userEmail"`
	UserName          string         `firestore:"userName"`
	Items             []orderItemDoc `firestore:"items"`
	Subtotal          float64        `firestore:"subtotal"`
	Shipping          float64        `firestore:"shipping"`
	Tax               float64        `firestore:"tax"`
	Total             float64        `firestore:"total"`
	Status            string         `firestore:"status"`
	PaymentMethod     string         `firestore:"paymentMethod"`
	PaymentStatus     string         `firestore:"paymentStatus"`
	ShippingAddress   addressDoc     `firestore:"shippingAddress"`
	TrackingNumber    string         `firestore:"trackingNumber,omitempty"`
	EstimatedDelivery time.Time      `firestore:"estimatedDelivery"`
	Notes             string         `firestore:"notes,omitempty"`
	IdempotencyKey    string         `firestore:"idempotencyKey,omitempty"`
	CreatedAt         time.Time      `firestore:"createdAt"`
	UpdatedAt         time.Time      `firestore:"updatedAt"`
}

type aggregateDoc struct {
	Orders      int64      `firestore:"orders"`
	TotalSpent  float64    `firestore:"totalSpent"`
	LastOrderAt *time.Time `firestore:"lastOrderAt,omitempty"`
}

// customerDoc is the shape of users/{uid}.
type customerDoc struct {
	Email          string       `firestore:"email"`
	DisplayName    string       `firestore:"displayName"`
	IsAdmin        bool         `firestore:"isAdmin"`
	DefaultAddress *addressDoc  `firestore:"defaultAddress,omitempty"`
	Aggregate      aggregateDoc `firestore:"aggregate"`
	CreatedAt      time.Time    `firestore:"createdAt"`
	UpdatedAt      time.Time    `firestore:"updatedAt"`
}

// productDoc is the shape of products/{id}.
type productDoc struct {
	Title              string    `firestore:"title"`
	Description        string    `firestore:"description,omitempty"`
	Category           string    `firestore:"category"`
	Brand              string    `firestore:"brand,omitempty"`
	Price              float64   `firestore:"price"`
	DiscountPercentage float64   `firestore:"discountPercentage"`
	Rating             float64   `firestore:"rating"`
	Stock              int       `firestore:"stock"`
	Thumbnail          string    `firestore:"thumbnail,omitempty"`
	Images             []string  `firestore:"images,omitempty"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

func newAddressDoc(a entity.ShippingAddress) addressDoc {
	return addressDoc(a)
}

func (d addressDoc) toEntity() entity.ShippingAddress {
	return entity.ShippingAddress(d)
}

func newOrderDoc(order *entity.Order) *orderDoc {
	items := make([]orderItemDoc, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDoc{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Size:      item.Variant.Size,
			Color:     item.Variant.Color,
		})
	}

	return &orderDoc{
		UserID:            order.UserID,
		UserEmail:         order.UserEmail,
		UserName:          order.UserName,
		Items:             items,
		Subtotal:          order.Subtotal,
		Shipping:          order.Shipping,
		Tax:               order.Tax,
		Total:             order.Total,
		Status:            order.Status.String(),
		PaymentMethod:     string(order.PaymentMethod),
		PaymentStatus:     string(order.PaymentStatus),
		ShippingAddress:   newAddressDoc(order.ShippingAddress),
		TrackingNumber:    order.TrackingNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		IdempotencyKey:    order.IdempotencyKey,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

func (d *orderDoc) toEntity(id string) *entity.Order {
	order := &entity.Order{
		ID:                id,
		UserID:            d.UserID,
		UserEmail:         d.UserEmail,
		UserName:          d.UserName,
		Items:             make([]entity.OrderItem, 0, len(d.Items)),
		Subtotal:          d.Subtotal,
		Shipping:          d.Shipping,
		Tax:               d.Tax,
		Total:             d.Total,
		Status:            entity.OrderStatus(d.Status),
		PaymentMethod:     entity.PaymentMethod(d.PaymentMethod),
		PaymentStatus:     entity.PaymentStatus(d.PaymentStatus),
		ShippingAddress:   d.ShippingAddress.toEntity(),
		TrackingNumber:    d.TrackingNumber,
		EstimatedDelivery: d.EstimatedDelivery,
		Notes:             d.Notes,
		IdempotencyKey:    d.IdempotencyKey,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Variant:   entity.Variant{Size: item.Size, Color: item.Color},
		})
	}

	return order
}

func (d *customerDoc) toEntity(uid string) *entity.Customer {
	customer := &entity.Customer{
		UID:         uid,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		IsAdmin:     d.IsAdmin,
		Aggregate: entity.CustomerAggregate{
			Orders:      d.Aggregate.Orders,
			TotalSpent:  d.Aggregate.TotalSpent,
			LastOrderAt: d.Aggregate.LastOrderAt,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.DefaultAddress != nil {
		address := d.DefaultAddress.toEntity()
		customer.DefaultAddress = &address
	}

	return customer
}

func newProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (d *productDoc) toEntity(id string) *entity.Product {
	return &entity.Product{
		ID:                 id,
		Title:              d.Title,
		Description:        d.Description,
		Category:           d.Category,
		Brand:              d.Brand,
		Price:              d.Price,
		DiscountPercentage: d.DiscountPercentage,
		Rating:             d.Rating,
		Stock:              d.Stock,
		Thumbnail:          d.Thumbnail,
		Images:             d.Images,
		Source:             entity.ProductSourceStore,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

package postgres

import (
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

func toAddressModel(a entity.ShippingAddress) model.ShippingAddressModel {
	return model.ShippingAddressModel{
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func toAddressDomain(a model.ShippingAddressModel) entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func toOrderModel(order *entity.Order) (*model.OrderModel, error) {
	items := make([]model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Size:      item.Variant.Size,
			Color:     item.Variant.Color,
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	return &model.OrderModel{
		ID:                order.ID,
		UserID:            order.UserID,
		UserEmail:         order.UserEmail,
		UserName:          order.UserName,
		Items:             datatypes.JSON(rawItems),
		Subtotal:          order.Subtotal,
		Shipping:          order.Shipping,
		Tax:               order.Tax,
		Total:             order.Total,
		Status:            order.Status.String(),
		PaymentMethod:     string(order.PaymentMethod),
		PaymentStatus:     string(order.PaymentStatus),
		ShippingAddress:   datatypes.NewJSONType(toAddressModel(order.ShippingAddress)),
		TrackingNumber:    order.TrackingNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		IdempotencyKey:    order.IdempotencyKey,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}, nil
}

func toOrderDomain(m *model.OrderModel) (*entity.Order, error) {
	var items []model.OrderItemModel
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return nil, errors.Wrapf(err, "failed to decode items of order %s", m.ID)
		}
	}

	order := &entity.Order{
		ID:                m.ID,
		UserID:            m.UserID,
		UserEmail:         m.UserEmail,
		UserName:          m.UserName,
		Items:             make([]entity.OrderItem, 0, len(items)),
		Subtotal:          m.Subtotal,
		Shipping:          m.Shipping,
		Tax:               m.Tax,
		Total:             m.Total,
		Status:            entity.OrderStatus(m.Status),
		PaymentMethod:     entity.PaymentMethod(m.PaymentMethod),
		PaymentStatus:     entity.PaymentStatus(m.PaymentStatus),
		ShippingAddress:   toAddressDomain(m.ShippingAddress.Data()),
		TrackingNumber:    m.TrackingNumber,
		EstimatedDelivery: m.EstimatedDelivery,
		Notes:             m.Notes,
		IdempotencyKey:    m.IdempotencyKey,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	for _, item := range items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Variant:   entity.Variant{Size: item.Size, Color: item.Color},
		})
	}

	return order, nil
}

func toCustomerModel(customer *entity.Customer) *model.CustomerModel {
	m := &model.CustomerModel{
		UID:         customer.UID,
		Email:       customer.Email,
		DisplayName: customer.DisplayName,
		IsAdmin:     customer.IsAdmin,
		OrderCount:  customer.Aggregate.Orders,
		TotalSpent:  customer.Aggregate.TotalSpent,
		LastOrderAt: customer.Aggregate.LastOrderAt,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
	if customer.DefaultAddress != nil {
		address := datatypes.NewJSONType(toAddressModel(*customer.DefaultAddress))
		m.DefaultAddress = &address
	}

	return m
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	customer := &entity.Customer{
		UID:         m.UID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		IsAdmin:     m.IsAdmin,
		Aggregate: entity.CustomerAggregate{
			Orders:      m.OrderCount,
			TotalSpent:  m.TotalSpent,
			LastOrderAt: m.LastOrderAt,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DefaultAddress != nil {
		address := toAddressDomain(m.DefaultAddress.Data())
		customer.DefaultAddress = &address
	}

	return customer
}

func toProductModel(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                 product.ID,
		Title:              product.Title,
		Description:        product.Description,
		Category:           product.Category,
		Brand:              product.Brand,
		Price:              product.Price,
		DiscountPercentage: product.DiscountPercentage,
		Rating:             product.Rating,
		Stock:              product.Stock,
		Thumbnail:          product.Thumbnail,
		Images:             datatypes.NewJSONType(product.Images),
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                 m.ID,
		Title:              m.Title,
		Description:        m.Description,
		Category:           m.Category,
		Brand:              m.Brand,
		Price:              m.Price,
		DiscountPercentage: m.DiscountPercentage,
		Rating:             m.Rating,
		Stock:              m.Stock,
		Thumbnail:          m.Thumbnail,
		Images:             m.Images.Data(),
		Source:             entity.ProductSourceStore,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

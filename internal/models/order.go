package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"                       json:"_id"`
	SessionID *string    `gorm:"index"                                      json:"sessionId,omitempty"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"                            json:"userId,omitempty"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `                                                  json:"createdAt"`
	UpdatedAt time.Time  `                                                  json:"updatedAt"`
}

func (Cart) TableName() string { return "carts" }

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"           json:"-"`
	CartID     uuid.UUID       `gorm:"type:uuid;not null;index"       json:"-"`
	Position   int             `gorm:"not null"                       json:"-"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"             json:"productId"`
	VariantKey string          `                                      json:"variantKey"`
	Qty        int             `gorm:"not null;check:qty > 0"         json:"qty"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"    json:"price"`
}

func (CartItem) TableName() string { return "cart_items" }

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Totals struct {
	Subtotal decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	Shipping decimal.Decimal `gorm:"column:shipping;type:numeric(12,2);not null" json:"shipping"`
	Total    decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"    json:"total"`
}

type Order struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"                        json:"_id"`
	UserID    *uuid.UUID  `gorm:"type:uuid;index"                             json:"userId,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Totals    Totals      `gorm:"embedded;embeddedPrefix:totals_"             json:"totals"`
	Status    OrderStatus `gorm:"not null;index"                              json:"status"`
	CreatedAt time.Time   `                                                   json:"createdAt"`
	UpdatedAt time.Time   `                                                   json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"-"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"    json:"-"`
	Position   int             `gorm:"not null"                    json:"-"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"          json:"productId"`
	VariantKey string          `                                   json:"variantKey"`
	Qty        int             `gorm:"not null"                    json:"qty"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

func (o *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

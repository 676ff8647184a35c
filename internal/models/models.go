package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// prices are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderUnisex}

const DefaultCurrency = "грн"

var Currencies = []string{DefaultCurrency, "USD", "EUR"}

type Price struct {
	Value    decimal.Decimal `gorm:"column:value;type:numeric(12,2);not null" json:"value"`
	Currency string          `gorm:"column:currency;not null"                 json:"currency"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name      string    `gorm:"not null"             json:"name"`
	Image     *string   `                            json:"image,omitempty"`
	CreatedAt time.Time `                            json:"createdAt"`
	UpdatedAt time.Time `                            json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Good struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"                 json:"_id"`
	Name            string      `gorm:"not null"                             json:"name"`
	CategoryID      *uuid.UUID  `gorm:"type:uuid;index"                      json:"category"`
	Image           string      `gorm:"not null"                             json:"image"`
	Price           Price       `gorm:"embedded;embeddedPrefix:price_"       json:"price"`
	Size            SizeSet     `gorm:"column:size_mask;not null;default:0"  json:"size"`
	Description     string      `gorm:"not null"                             json:"description"`
	Gender          Gender      `gorm:"not null;index"                       json:"gender"`
	Characteristics []string    `gorm:"serializer:json;type:text"            json:"characteristics"`
	Feedbacks       []uuid.UUID `gorm:"serializer:json;type:text"            json:"feedbacks"`
	PrevDescription *string     `                                            json:"prevDescription,omitempty"`
	CreatedAt       time.Time   `gorm:"index"                                json:"createdAt"`
	UpdatedAt       time.Time   `                                            json:"updatedAt"`
}

func (Good) TableName() string { return "goods" }

func (g *Good) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"    json:"_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Category    string    `                               json:"category,omitempty"`
	Author      string    `gorm:"not null"                json:"author"`
	Rate        int       `gorm:"not null"                json:"rate"`
	Description string    `gorm:"not null"                json:"description"`
	Date        string    `gorm:"size:10"                 json:"date"`
	CreatedAt   time.Time `gorm:"index"                   json:"createdAt"`
	UpdatedAt   time.Time `                               json:"updatedAt"`
}

func (Feedback) TableName() string { return "feedbacks" }

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	Name         string    `                            json:"name"`
	Role         Role      `gorm:"not null"             json:"role"`
	CreatedAt    time.Time `                            json:"createdAt"`
	UpdatedAt    time.Time `                            json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{&Category{}, &Good{}, &Feedback{}, &User{}, &Cart{}, &CartItem{}, &Order{}, &OrderItem{}}
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoodPatch lists the fields a partial good update may touch. Nil means unchanged.
type GoodPatch struct {
	Name            *string
	CategoryID      *uuid.UUID
	Image           *string
	PriceValue      *decimal.Decimal
	Currency        *string
	Size            SizeSet
	Description     *string
	Gender          *Gender
	Characteristics []string
}

// Apply mutates g. A changed description keeps the previous one in PrevDescription.
func (p GoodPatch) Apply(g *Good) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.CategoryID != nil {
		id := *p.CategoryID
		g.CategoryID = &id
	}
	if p.Image != nil {
		g.Image = *p.Image
	}
	if p.PriceValue != nil {
		g.Price.Value = *p.PriceValue
	}
	if p.Currency != nil {
		g.Price.Currency = *p.Currency
	}
	if p.Size != nil {
		g.Size = p.Size
	}
	if p.Description != nil && *p.Description != g.Description {
		prev := g.Description
		g.PrevDescription = &prev
		g.Description = *p.Description
	}
	if p.Gender != nil {
		g.Gender = *p.Gender
	}
	if p.Characteristics != nil {
		g.Characteristics = p.Characteristics
	}
}

// Package aggregate turns a flat goods projection into per-category summary rows.
// Each stage is a plain function over slices so it can be tested on its own;
// Summarize chains them in the order the listing needs.
package aggregate

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// GoodRef is one row of the goods projection, already joined to its category name.
type GoodRef struct {
	ID           uuid.UUID
	CategoryID   *uuid.UUID
	CategoryName *string
	Image        string
	CreatedAt    time.Time
}

type Group struct {
	CategoryID uuid.UUID
	Name       *string
	Image      string
	Count      int64
}

type Summary struct {
	ID         uuid.UUID `json:"_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	GoodsCount int64     `json:"goodsCount"`
}

type Facet struct {
	Total int64     `json:"total"`
	Data  []Summary `json:"data"`
}

// Restrict drops goods that are not attached to a category.
func Restrict(refs []GoodRef) []GoodRef {
	out := make([]GoodRef, 0, len(refs))
	for _, r := range refs {
		if r.CategoryID != nil {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst orders by creation time descending, ties broken by id ascending.
func SortNewestFirst(refs []GoodRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		if !refs[i].CreatedAt.Equal(refs[j].CreatedAt) {
			return refs[i].CreatedAt.After(refs[j].CreatedAt)
		}
		return bytes.Compare(refs[i].ID[:], refs[j].ID[:]) < 0
	})
}

// GroupByCategory counts members per category. The first member seen supplies
// the image, so callers sort before grouping.
func GroupByCategory(refs []GoodRef) []Group {
	index := make(map[uuid.UUID]int)
	var groups []Group
	for _, r := range refs {
		if r.CategoryID == nil {
			continue
		}
		if i, ok := index[*r.CategoryID]; ok {
			groups[i].Count++
			continue
		}
		index[*r.CategoryID] = len(groups)
		groups = append(groups, Group{
			CategoryID: *r.CategoryID,
			Name:       r.CategoryName,
			Image:      r.Image,
			Count:      1,
		})
	}
	return groups
}

// Join keeps groups whose category still exists.
func Join(groups []Group) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		if g.Name == nil {
			continue
		}
		out = append(out, Summary{
			ID:         g.CategoryID,
			Name:       *g.Name,
			Image:      g.Image,
			GoodsCount: g.Count,
		})
	}
	return out
}

func SortByName(rows []Summary) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return bytes.Compare(rows[i].ID[:], rows[j].ID[:]) < 0
	})
}

// Paginate returns the total row count and the [offset, offset+limit) window.
func Paginate(rows []Summary, offset, limit int) Facet {
	f := Facet{Total: int64(len(rows)), Data: []Summary{}}
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || offset >= len(rows) {
		return f
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	f.Data = append(f.Data, rows[offset:end]...)
	return f
}

func Summarize(refs []GoodRef, offset, limit int) Facet {
	restricted := Restrict(refs)
	SortNewestFirst(restricted)
	rows := Join(GroupByCategory(restricted))
	SortByName(rows)
	return Paginate(rows, offset, limit)
}

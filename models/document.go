package models

import "encoding/json"

// Document is the whole persisted state of the store. The Admin field is
// legacy credential storage: it is carried verbatim across load/save
// cycles and never interpreted.
type Document struct {
	Products  []Product       `json:"products"`
	Inventory Inventory       `json:"inventory"`
	Orders    []Order         `json:"orders"`
	Admin     json.RawMessage `json:"admin,omitempty"`
}

// NewDocument returns an empty document with all containers initialized.
func NewDocument() *Document {
	return &Document{
		Products:  []Product{},
		Inventory: Inventory{Products: map[string]*InventoryEntry{}},
		Orders:    []Order{},
	}
}

// FindProduct returns the product with the given id, or nil.
func (d *Document) FindProduct(id string) *Product {
	if id == "" {
		return nil
	}
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindProductByName returns the first product with the given name, or nil.
func (d *Document) FindProductByName(name string) *Product {
	if name == "" {
		return nil
	}
	for i := range d.Products {
		if d.Products[i].Name == name {
			return &d.Products[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original; this is what gives the validate-then-commit
// sequence its transaction boundary.
func (d *Document) Clone() *Document {
	out := &Document{
		Products:  make([]Product, len(d.Products)),
		Inventory: Inventory{Products: make(map[string]*InventoryEntry, len(d.Inventory.Products))},
		Orders:    make([]Order, len(d.Orders)),
	}

	for i, p := range d.Products {
		cp := p
		if p.Styles != nil {
			cp.Styles = make([]Style, len(p.Styles))
			copy(cp.Styles, p.Styles)
		}
		out.Products[i] = cp
	}

	for id, entry := range d.Inventory.Products {
		out.Inventory.Products[id] = entry.clone()
	}

	for i, o := range d.Orders {
		cp := o
		if o.Cart != nil {
			cp.Cart = make([]CartLine, len(o.Cart))
			copy(cp.Cart, o.Cart)
		}
		out.Orders[i] = cp
	}

	if d.Admin != nil {
		out.Admin = make(json.RawMessage, len(d.Admin))
		copy(out.Admin, d.Admin)
	}

	return out
}

func (e *InventoryEntry) clone() *InventoryEntry {
	if e == nil {
		return nil
	}
	out := &InventoryEntry{}
	if e.Styles != nil {
		out.Styles = make(map[string]SizeCounts, len(e.Styles))
		for style, counts := range e.Styles {
			out.Styles[style] = counts.clone()
		}
	}
	if e.Sizes != nil {
		out.Sizes = e.Sizes.clone()
	}
	return out
}

func (c SizeCounts) clone() SizeCounts {
	if c == nil {
		return nil
	}
	out := make(SizeCounts, len(c))
	for size, n := range c {
		out[size] = n
	}
	return out
}

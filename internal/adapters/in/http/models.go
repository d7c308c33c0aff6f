package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/product"
)

type createBoxRequest struct {
	Label      string   `json:"label"`
	Status     string   `json:"status,omitempty"`
	ProductIDs []string `json:"product_ids,omitempty"`
}

type updateBoxRequest struct {
	Label  *string `json:"label,omitempty"`
	Status *string `json:"status,omitempty"`
}

type membershipRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type createProductRequest struct {
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
}

type updateProductRequest struct {
	Name    *string `json:"name,omitempty"`
	Barcode *string `json:"barcode,omitempty"`
}

type errorJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type pageJSON[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

type boxJSON struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Status   string        `json:"status"`
	Products []productJSON `json:"products"`
}

type boxSummaryJSON struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Status       string    `json:"status"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type boxDetailsJSON struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	Status    string        `json:"status"`
	Products  []productJSON `json:"products"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type productJSON struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Barcode   string     `json:"barcode"`
	BoxID     *string    `json:"box_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type statusCountJSON struct {
	Status   string `json:"status"`
	Boxes    int64  `json:"boxes"`
	Products int64  `json:"products"`
}

type boxStatsJSON struct {
	Statuses           []statusCountJSON `json:"statuses"`
	UnassignedProducts int64             `json:"unassigned_products"`
}

func boxFromAggregate(b *box.Box) boxJSON {
	products := make([]productJSON, 0, len(b.Products()))
	for _, p := range b.Products() {
		products = append(products, productFromAggregate(p))
	}
	return boxJSON{
		ID:       b.ID().String(),
		Label:    b.Label(),
		Status:   b.Status().String(),
		Products: products,
	}
}

func productFromAggregate(p *product.Product) productJSON {
	var boxID *string
	if p.BoxID() != nil {
		s := p.BoxID().String()
		boxID = &s
	}
	return productJSON{
		ID:      p.ID().String(),
		Name:    p.Name(),
		Barcode: p.Barcode(),
		BoxID:   boxID,
	}
}

func boxDetailsFromReadModel(result queries.GetBoxQueryResponse) boxDetailsJSON {
	products := make([]productJSON, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, productFromReadModel(p))
	}
	return boxDetailsJSON{
		ID:        result.ID.String(),
		Label:     result.Label,
		Status:    result.Status.String(),
		Products:  products,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}
}

func productFromReadModel(p queries.ProductSummary) productJSON {
	var boxID *string
	if p.BoxID != nil {
		s := p.BoxID.String()
		boxID = &s
	}
	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt
	return productJSON{
		ID:        p.ID.String(),
		Name:      p.Name,
		Barcode:   p.Barcode,
		BoxID:     boxID,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

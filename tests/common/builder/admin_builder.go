//go:build unit || e2e

package builder

import (
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminBuilder struct {
	Name  string
	Email string
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
	}
}

func (b *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(b)
	return b
}

func (b *AdminBuilder) BuildReadModel() *queries.AuthorizedAdminView {
	return &queries.AuthorizedAdminView{
		ID:    uuid.New(),
		Name:  b.Name,
		Email: b.Email,
	}
}

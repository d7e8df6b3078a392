package main

import "context"

// ProductUseCase contém a lógica de listagem do catálogo
type ProductUseCase struct {
	products ProductRepository
}

// NewProductUseCase cria uma nova instância de ProductUseCase
func NewProductUseCase(products ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		products: products,
	}
}

// ListProducts lista produtos aplicando os filtros opcionais
func (uc *ProductUseCase) ListProducts(ctx context.Context, filter ProductFilterRequest) ([]ProductResponse, error) {
	products, err := uc.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			PriceCents: p.PriceCents,
			Active:     p.Active,
		})
	}
	return responses, nil
}

package usecase

import "wareland-api/internal/core/domain"

// ToCatalogEntry projects a stored property onto its public shape. nil in, nil out.
func ToCatalogEntry(p *domain.Property) *domain.CatalogEntry {
	if p == nil {
		return nil
	}
	return &domain.CatalogEntry{
		PropertyID:  p.ID,
		Address:     p.Address,
		Price:       p.Price,
		Description: p.Description,
		Seller:      ToSeller(p.Owner),
	}
}

// ToSeller exposes the public part of a user. nil in, nil out.
func ToSeller(u *domain.User) *domain.Seller {
	if u == nil {
		return nil
	}
	return &domain.Seller{
		UserID:      u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toCatalogEntries(properties []domain.Property) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(properties))
	for i := range properties {
		entries = append(entries, *ToCatalogEntry(&properties[i]))
	}
	return entries
}

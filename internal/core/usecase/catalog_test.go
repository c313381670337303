package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/usecase"
)

func int64Ptr(v int64) *int64     { return &v }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func sampleProperties() []domain.Property {
	owner := &domain.User{ID: 7, Username: "seller1", Name: "Budi", Email: "budi@example.com", Role: domain.RoleSeller}
	return []domain.Property{
		{ID: 1, Address: "Jl. Jakarta 1", Price: 300, Description: "Rumah", OwnerID: int64Ptr(7), Owner: owner},
		{ID: 2, Address: "Jl. Bandung 2", Price: 900, Description: "Gudang"},
	}
}

func TestListProperties_EmptyStoreGivesEmptySlice(t *testing.T) {
	uc := usecase.NewListPropertiesUseCase(&memoryPropertyStore{})
	entries, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestListProperties_PropagatesStoreError(t *testing.T) {
	uc := usecase.NewListPropertiesUseCase(&memoryPropertyStore{err: errStoreDown})
	if _, err := uc.Execute(context.Background()); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSearchProperties_AllAbsentEqualsListAll(t *testing.T) {
	store := &memoryPropertyStore{properties: sampleProperties()}
	all, err := usecase.NewListPropertiesUseCase(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found, err := usecase.NewSearchPropertiesUseCase(store).Execute(context.Background(), &domain.SearchCriteria{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != len(found) {
		t.Fatalf("expected %d entries, got %d", len(all), len(found))
	}
	nilCriteria, err := usecase.NewSearchPropertiesUseCase(store).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("search nil: %v", err)
	}
	if len(nilCriteria) != len(all) {
		t.Fatalf("nil criteria: expected %d entries, got %d", len(all), len(nilCriteria))
	}
}

func TestSearchProperties_KeywordAndPriceRange(t *testing.T) {
	store := &memoryPropertyStore{properties: sampleProperties()}
	uc := usecase.NewSearchPropertiesUseCase(store)

	found, err := uc.Execute(context.Background(), &domain.SearchCriteria{
		Keyword:  strPtr("jakarta"),
		MinPrice: floatPtr(100),
		MaxPrice: floatPtr(500),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(found) != 1 || found[0].PropertyID != 1 {
		t.Fatalf("expected only property 1, got %#v", found)
	}
	if found[0].Seller == nil || found[0].Seller.Username != "seller1" {
		t.Fatalf("expected seller to be projected, got %#v", found[0].Seller)
	}
}

func TestSearchProperties_MinGreaterThanMaxIsEmpty(t *testing.T) {
	uc := usecase.NewSearchPropertiesUseCase(&memoryPropertyStore{properties: sampleProperties()})
	found, err := uc.Execute(context.Background(), &domain.SearchCriteria{MinPrice: floatPtr(1000), MaxPrice: floatPtr(10)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no entries, got %d", len(found))
	}
}

func TestGetPropertyDetail(t *testing.T) {
	uc := usecase.NewGetPropertyDetailUseCase(&memoryPropertyStore{properties: sampleProperties()})

	entry, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if entry == nil || entry.Address != "Jl. Bandung 2" || entry.Seller != nil {
		t.Fatalf("unexpected entry %#v", entry)
	}

	missing, err := uc.Execute(context.Background(), 999)
	if err != nil {
		t.Fatalf("Execute unknown id: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %#v", missing)
	}
}

func TestToCatalogEntry(t *testing.T) {
	if usecase.ToCatalogEntry(nil) != nil {
		t.Fatal("nil property must map to nil")
	}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &domain.Property{
		ID: 5, Address: "A", Price: 12.5, Description: "D",
		Owner: &domain.User{ID: 3, Username: "u", Name: "N", Email: "e@x.io", PhoneNumber: "0812", Role: domain.RoleSeller, PasswordHash: "secret", CreatedAt: created, UpdatedAt: created},
	}
	e := usecase.ToCatalogEntry(p)
	if e.PropertyID != p.ID || e.Address != p.Address || e.Price != p.Price || e.Description != p.Description {
		t.Fatalf("fields not copied: %#v", e)
	}
	s := e.Seller
	if s == nil || s.UserID != 3 || s.Username != "u" || s.Name != "N" || s.Email != "e@x.io" ||
		s.PhoneNumber != "0812" || s.Role != domain.RoleSeller || !s.CreatedAt.Equal(created) {
		t.Fatalf("seller not copied: %#v", s)
	}
}

func TestSearchByKeyword_BlankGivesEmpty(t *testing.T) {
	store := &memoryPropertyStore{properties: sampleProperties()}
	found, err := store.SearchByKeyword(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchByKeyword: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected empty result for blank keyword, got %d", len(found))
	}
}

func TestToSeller(t *testing.T) {
	if usecase.ToSeller(nil) != nil {
		t.Fatal("nil user must map to nil seller")
	}
	s := usecase.ToSeller(&domain.User{ID: 4, Username: "sari", PasswordHash: "secret", Role: domain.RoleSeller})
	if s == nil || s.UserID != 4 || s.Username != "sari" || s.Role != domain.RoleSeller {
		t.Fatalf("unexpected seller %+v", s)
	}
}

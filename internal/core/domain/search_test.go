package domain_test

import (
	"errors"
	"testing"

	"wareland-api/internal/core/domain"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuildCatalogFilter_NilCriteriaSelectsAll(t *testing.T) {
	f := domain.BuildCatalogFilter(nil)
	if !f.SelectsAll() {
		t.Fatalf("expected select-all filter, got %+v", f)
	}
}

func TestBuildCatalogFilter_BlankKeywordIsAbsent(t *testing.T) {
	for _, kw := range []string{"", "   ", "\t\n"} {
		f := domain.BuildCatalogFilter(&domain.SearchCriteria{Keyword: strPtr(kw)})
		if f.Keyword != "" {
			t.Fatalf("keyword %q: expected no keyword predicate, got %q", kw, f.Keyword)
		}
		if !f.Matches(domain.Property{Address: "anything"}) {
			t.Fatalf("keyword %q: blank keyword must not filter anything out", kw)
		}
	}
}

func TestBuildCatalogFilter_TrimsAndLowersKeyword(t *testing.T) {
	f := domain.BuildCatalogFilter(&domain.SearchCriteria{Keyword: strPtr("  JaKarTa ")})
	if f.Keyword != "jakarta" {
		t.Fatalf("expected normalised keyword 'jakarta', got %q", f.Keyword)
	}
}

func TestCatalogFilter_Matches(t *testing.T) {
	p := domain.Property{ID: 1, Address: "Jl. Jakarta 1", Price: 300, Description: "Rumah dekat TOL"}

	tests := []struct {
		name     string
		criteria domain.SearchCriteria
		want     bool
	}{
		{"keyword in address", domain.SearchCriteria{Keyword: strPtr("jakarta")}, true},
		{"keyword in description, different case", domain.SearchCriteria{Keyword: strPtr("tol")}, true},
		{"keyword nowhere", domain.SearchCriteria{Keyword: strPtr("bandung")}, false},
		{"inside price range", domain.SearchCriteria{MinPrice: floatPtr(100), MaxPrice: floatPtr(500)}, true},
		{"boundaries are inclusive", domain.SearchCriteria{MinPrice: floatPtr(300), MaxPrice: floatPtr(300)}, true},
		{"below min", domain.SearchCriteria{MinPrice: floatPtr(301)}, false},
		{"above max", domain.SearchCriteria{MaxPrice: floatPtr(299)}, false},
		{"min greater than max", domain.SearchCriteria{MinPrice: floatPtr(500), MaxPrice: floatPtr(100)}, false},
		{"all combined", domain.SearchCriteria{Keyword: strPtr("JAKARTA"), MinPrice: floatPtr(100), MaxPrice: floatPtr(500)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := tt.criteria
			got := domain.BuildCatalogFilter(&criteria).Matches(p)
			if got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordOnlyFilter_BlankIsNotSelectAll(t *testing.T) {
	if _, ok := domain.KeywordOnlyFilter("  "); ok {
		t.Fatal("expected ok=false for blank keyword")
	}
	f, ok := domain.KeywordOnlyFilter(" Bandung ")
	if !ok || f.Keyword != "bandung" {
		t.Fatalf("expected keyword filter 'bandung', got %+v ok=%v", f, ok)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		t.Fatal("keyword-only filter must not carry price bounds")
	}
}

func TestBusinessErrorKinds(t *testing.T) {
	err := domain.NewResourceNotFound("user not found")
	if err.Error() != "user not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, domain.ErrResourceNotFound) || !errors.Is(err, domain.ErrBusiness) {
		t.Fatal("expected error to match its kind and the business base")
	}
	if errors.Is(err, domain.ErrBadRequest) {
		t.Fatal("not-found must not match bad-request")
	}
}

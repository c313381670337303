package postgres

import (
	"reflect"
	"testing"

	"wareland-api/internal/core/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestApplyCatalogFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.CatalogFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "select all",
			filter:    domain.CatalogFilter{},
			wantWhere: "",
			wantArgs:  []interface{}{},
		},
		{
			name:      "keyword only",
			filter:    domain.CatalogFilter{Keyword: "jakarta"},
			wantWhere: `WHERE (LOWER(p.address) LIKE $1 ESCAPE '\' OR LOWER(p.description) LIKE $1 ESCAPE '\')`,
			wantArgs:  []interface{}{"%jakarta%"},
		},
		{
			name:      "price range",
			filter:    domain.CatalogFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(500)},
			wantWhere: "WHERE p.price >= $1 AND p.price <= $2",
			wantArgs:  []interface{}{100.0, 500.0},
		},
		{
			name:      "everything",
			filter:    domain.CatalogFilter{Keyword: "rumah", MaxPrice: floatPtr(900)},
			wantWhere: `WHERE (LOWER(p.address) LIKE $1 ESCAPE '\' OR LOWER(p.description) LIKE $1 ESCAPE '\') AND p.price <= $2`,
			wantArgs:  []interface{}{"%rumah%", 900.0},
		},
		{
			name:      "like wildcards are literal",
			filter:    domain.CatalogFilter{Keyword: `50%_off\`},
			wantWhere: `WHERE (LOWER(p.address) LIKE $1 ESCAPE '\' OR LOWER(p.description) LIKE $1 ESCAPE '\')`,
			wantArgs:  []interface{}{`%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := applyCatalogFilter(tt.filter)
			if where != tt.wantWhere {
				t.Fatalf("where:\n got %s\nwant %s", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args: got %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

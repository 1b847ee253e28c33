package shared_test

import (
	"reception/shared"
	"reception/shared/dto"
	"strings"
	"testing"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	code, err := shared.GenerateCode(8)
	if err != nil {
		t.Fatalf("GenerateCode failed: %v", err)
	}

	if len(code) != 8 {
		t.Errorf("expected length 8, got %d", len(code))
	}

	if code != strings.ToUpper(code) {
		t.Errorf("expected uppercase code, got %s", code)
	}

	if _, err := shared.GenerateCode(0); err == nil {
		t.Error("expected error for zero length")
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get"); got != "booking:get" {
		t.Errorf("expected bare prefix, got %s", got)
	}

	if got := shared.BuildCacheKey("booking:get", "id-1"); got != "booking:get:id-1" {
		t.Errorf("expected joined key, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "available"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if first != second {
		t.Error("expected deterministic cache keys for identical queries")
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 1}, filter)
	if first == other {
		t.Error("expected different cache keys for different queries")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "bookings")

	where, args := group.GetWhereClause()
	if where == "" {
		t.Fatal("expected non-empty where clause")
	}

	if args["id"] != "abc" {
		t.Errorf("expected id arg 'abc', got %v", args["id"])
	}
}

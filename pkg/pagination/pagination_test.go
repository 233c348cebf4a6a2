package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults for zero values", 0, 0, 1, 10},
		{"defaults for negatives", -3, -7, 1, 10},
		{"passes sane values through", 4, 25, 4, 25},
		{"clamps oversized limit", 1, 500, 1, 50},
		{"keeps limit at the cap", 2, 50, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.page, tt.limit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("Normalize(%d, %d) = %+v, want page %d limit %d",
					tt.page, tt.limit, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Errorf("expected offset 0 on the first page, got %d", got)
	}
	if got := (Params{Page: 3, Limit: 25}).Offset(); got != 50 {
		t.Errorf("expected offset 50, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{101, 50, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

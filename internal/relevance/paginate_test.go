package relevance

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		total, page    int
		wantPage       int
		wantSkip       int
		wantTotalPages int
		wantLen        int
	}{
		{name: "first page", total: 25, page: 1, wantPage: 1, wantSkip: 0, wantTotalPages: 3, wantLen: 9},
		{name: "middle page", total: 25, page: 2, wantPage: 2, wantSkip: 9, wantTotalPages: 3, wantLen: 9},
		{name: "short last page", total: 25, page: 3, wantPage: 3, wantSkip: 18, wantTotalPages: 3, wantLen: 7},
		{name: "past the end", total: 25, page: 4, wantPage: 4, wantSkip: 27, wantTotalPages: 3, wantLen: 0},
		{name: "zero clamps to one", total: 25, page: 0, wantPage: 1, wantSkip: 0, wantTotalPages: 3, wantLen: 9},
		{name: "negative clamps to one", total: 25, page: -3, wantPage: 1, wantSkip: 0, wantTotalPages: 3, wantLen: 9},
		{name: "empty listing", total: 0, page: 1, wantPage: 1, wantSkip: 0, wantTotalPages: 0, wantLen: 0},
		{name: "exact multiple", total: 18, page: 2, wantPage: 2, wantSkip: 9, wantTotalPages: 2, wantLen: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := Paginate(tt.total, tt.page, 9)
			if pg.Page != tt.wantPage {
				t.Errorf("Page: got %d, want %d", pg.Page, tt.wantPage)
			}
			if pg.Skip != tt.wantSkip {
				t.Errorf("Skip: got %d, want %d", pg.Skip, tt.wantSkip)
			}
			if pg.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages: got %d, want %d", pg.TotalPages, tt.wantTotalPages)
			}
			start, end := pg.Window(tt.total)
			if end-start != tt.wantLen {
				t.Errorf("Window length: got %d, want %d", end-start, tt.wantLen)
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	pg := Paginate(25, 2, 9)
	if !pg.HasPrev() || !pg.HasNext() {
		t.Error("middle page should have both neighbors")
	}

	first := Paginate(25, 1, 9)
	if first.HasPrev() {
		t.Error("first page should have no previous")
	}

	last := Paginate(25, 3, 9)
	if last.HasNext() {
		t.Error("last page should have no next")
	}
}

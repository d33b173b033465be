package services

import (
	"strings"
	"testing"
)

func TestClampPaging(t *testing.T) {
	cases := []struct {
		page, limit                     int
		defaultSize, maxSize            int
		wantPage, wantLimit, wantOffset int
	}{
		{1, 10, 10, 100, 1, 10, 0},
		{3, 10, 10, 100, 3, 10, 20},
		{0, 10, 10, 100, 1, 10, 0},
		{-5, 10, 10, 100, 1, 10, 0},
		{2, 0, 10, 100, 2, 10, 10},
		{1, 500, 10, 100, 1, 100, 0},
		{1, 100, 10, 100, 1, 100, 0},
		// operator-tuned bounds are honored
		{1, 500, 10, 25, 1, 25, 0},
		{2, 0, 5, 100, 2, 5, 5},
		// zero-value config falls back to the package defaults
		{1, 500, 0, 0, 1, 100, 0},
		{2, 0, 0, 0, 2, 10, 10},
	}
	for _, tc := range cases {
		page, limit, offset := clampPaging(tc.page, tc.limit, tc.defaultSize, tc.maxSize)
		if page != tc.wantPage || limit != tc.wantLimit || offset != tc.wantOffset {
			t.Errorf("clampPaging(%d, %d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tc.page, tc.limit, tc.defaultSize, tc.maxSize,
				page, limit, offset, tc.wantPage, tc.wantLimit, tc.wantOffset)
		}
	}
}

func TestOrderClauseAllowList(t *testing.T) {
	if got := orderClause(storeSortColumns, "name", "asc"); got != "name ASC, id ASC" {
		t.Errorf("unexpected clause: %q", got)
	}
	if got := orderClause(storeSortColumns, "createdAt", "desc"); got != "created_at DESC, id ASC" {
		t.Errorf("unexpected clause: %q", got)
	}
	// default direction is desc
	if got := orderClause(storeSortColumns, "email", ""); got != "email DESC, id ASC" {
		t.Errorf("unexpected clause: %q", got)
	}
}

func TestOrderClauseRejectsUnknownColumns(t *testing.T) {
	hostile := []string{
		"password",
		"name; DROP TABLE stores--",
		"(SELECT 1)",
		"",
	}
	for _, sortBy := range hostile {
		got := orderClause(storeSortColumns, sortBy, "asc")
		if !strings.HasPrefix(got, "created_at ") {
			t.Errorf("sortBy %q: expected created_at fallback, got %q", sortBy, got)
		}
		if strings.Contains(got, sortBy) && sortBy != "" {
			t.Errorf("sortBy %q leaked into clause %q", sortBy, got)
		}
	}
}

func TestOrderClauseRejectsUnknownDirection(t *testing.T) {
	got := orderClause(storeSortColumns, "name", "asc; DROP TABLE stores")
	if got != "name DESC, id ASC" {
		t.Errorf("hostile direction should fall back to DESC, got %q", got)
	}
}

func TestUserSortColumnsIncludeRole(t *testing.T) {
	if got := orderClause(userSortColumns, "role", "asc"); got != "role ASC, id ASC" {
		t.Errorf("unexpected clause: %q", got)
	}
	if got := orderClause(storeSortColumns, "role", "asc"); !strings.HasPrefix(got, "created_at ") {
		t.Errorf("role must not be sortable for stores, got %q", got)
	}
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		total       int64
		page, limit int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{25, 1, 10, 3, true, false},
		{25, 2, 10, 3, true, true},
		{25, 3, 10, 3, false, true},
		{20, 2, 10, 2, false, true},
		{0, 1, 10, 0, false, false},
		{1, 1, 10, 1, false, false},
		{100, 1, 100, 1, false, false},
	}
	for _, tc := range cases {
		p := paginate(tc.total, tc.page, tc.limit)
		if p.TotalPages != tc.wantPages {
			t.Errorf("paginate(%d, %d, %d): totalPages = %d, want %d", tc.total, tc.page, tc.limit, p.TotalPages, tc.wantPages)
		}
		if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
			t.Errorf("paginate(%d, %d, %d): hasNext/hasPrev = %v/%v, want %v/%v",
				tc.total, tc.page, tc.limit, p.HasNext, p.HasPrev, tc.wantNext, tc.wantPrev)
		}
		if p.TotalItems != tc.total || p.CurrentPage != tc.page {
			t.Errorf("paginate(%d, %d, %d): echoed totals wrong: %+v", tc.total, tc.page, tc.limit, p)
		}
	}
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"coffee", "%coffee%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
	}
	for _, tc := range cases {
		if got := likePattern(tc.in); got != tc.want {
			t.Errorf("likePattern(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestViewerIsUser(t *testing.T) {
	var v *Viewer
	if v.IsUser() {
		t.Fatal("nil viewer must not count as USER")
	}
	if !(&Viewer{ID: 1, Role: "USER"}).IsUser() {
		t.Fatal("USER viewer should count")
	}
	if (&Viewer{ID: 1, Role: "ADMIN"}).IsUser() {
		t.Fatal("ADMIN viewer must not count")
	}
}

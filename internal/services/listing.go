package services

import (
	"strings"

	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
)

// ListParams are the query knobs shared by the user and store listings.
// Zero values fall back to defaults; Limit is clamped to the configured
// maximum page size.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Name      string
	Email     string
	Address   string
	Search    string
	Role      string
}

// Viewer identifies the authenticated requester for response projection.
type Viewer struct {
	ID   uint
	Role string
}

// IsUser reports whether the viewer sees their own rating in store rows.
func (v *Viewer) IsUser() bool {
	return v != nil && v.Role == models.RoleUser
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// clampPaging normalizes 1-indexed paging against the configured bounds and
// returns the SQL offset. Non-positive bounds fall back to the package
// defaults so a zero-value config stays usable.
func clampPaging(page, limit, defaultSize, maxSize int) (int, int, int) {
	if defaultSize < 1 {
		defaultSize = defaultLimit
	}
	if maxSize < 1 {
		maxSize = maxLimit
	}
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	return page, limit, (page - 1) * limit
}

// sortable columns per listing; anything else falls back to created_at.
// Column names are taken from this table, never from the request, so the
// ORDER BY clause cannot be injected into.
var (
	storeSortColumns = map[string]string{
		"name":      "name",
		"email":     "email",
		"address":   "address",
		"createdAt": "created_at",
	}
	userSortColumns = map[string]string{
		"name":      "name",
		"email":     "email",
		"address":   "address",
		"role":      "role",
		"createdAt": "created_at",
	}
)

// orderClause builds a deterministic ORDER BY: the requested column (or
// created_at when unknown), the requested direction (desc by default), and
// id as tie-break so pagination stays stable.
func orderClause(allowed map[string]string, sortBy, sortOrder string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if sortOrder == "asc" || sortOrder == "ASC" {
		dir = "ASC"
	}
	return col + " " + dir + ", id ASC"
}

// paginate computes the page metadata from the filtered total.
func paginate(total int64, page, limit int) dto.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return dto.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     int64((page-1)*limit+limit) < total,
		HasPrev:     page > 1,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a contains match. LIKE wildcards in the input are
// escaped so filter values match literally; Postgres treats backslash as the
// default escape character.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"taprobane/constants"
	"taprobane/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// Half-width in degrees of the bounding box used for geo search.
	// Not a true radius query.
	geoBoxDegrees = 0.5
)

// ParseListQuery reads the shared listing filters from the request.
func ParseListQuery(c *gin.Context) dto.ListQuery {
	q := dto.ListQuery{
		Type:      c.Query("type"),
		Region:    c.Query("region"),
		Category:  c.Query("category"),
		Location:  c.Query("location"),
		Specialty: c.Query("specialty"),
		Language:  c.Query("language"),
		Verified:  c.Query("verified"),
		Status:    c.Query("status"),
		Q:         c.Query("q"),
		Sort:      c.Query("sort"),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Page = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}
	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Rating = &v
		}
	}
	if raw := c.Query("lat"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Lat = &v
		}
	}
	if raw := c.Query("lng"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Lng = &v
		}
	}
	if raw := c.Query("radius"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Radius = v
		}
	}

	return q
}

// HasFilter reports whether an optional filter value should be applied.
func HasFilter(v string) bool {
	return v != "" && v != "all"
}

// Offset converts 1-based page/limit to a store offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Pages computes ceil(total/limit) for the listing envelope.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// BoundingBox returns the fixed-size box around a point used by geo search.
func BoundingBox(lat, lng float64) (minLat, maxLat, minLng, maxLng float64) {
	return lat - geoBoxDegrees, lat + geoBoxDegrees, lng - geoBoxDegrees, lng + geoBoxDegrees
}

// OrderClause translates the raw sort parameter ("-createdAt", "rating")
// into an ORDER BY clause, falling back when absent. Field names are reduced
// to snake_case identifier characters before use.
func OrderClause(sort, fallback string) string {
	if sort == "" {
		sort = fallback
	}

	desc := strings.HasPrefix(sort, "-")
	field := sanitizeField(strings.TrimPrefix(sort, "-"))
	if field == "" {
		field = sanitizeField(strings.TrimPrefix(fallback, "-"))
		desc = strings.HasPrefix(fallback, "-")
	}

	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}

// sanitizeField converts a client field name (camelCase) to a snake_case
// column identifier, dropping anything that is not a word character.
func sanitizeField(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// searchClause builds the case-insensitive OR substring match over the
// entity's text fields.
func searchClause(db *gorm.DB, q string, fields []string) *gorm.DB {
	pattern := "%" + strings.ToLower(q) + "%"
	clauses := make([]string, len(fields))
	args := make([]interface{}, len(fields))
	for i, f := range fields {
		clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", f)
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}

func geoClause(db *gorm.DB, q dto.ListQuery) *gorm.DB {
	if q.Lat == nil || q.Lng == nil {
		return db
	}
	minLat, maxLat, minLng, maxLng := BoundingBox(*q.Lat, *q.Lng)
	return db.Where("lat >= ? AND lat <= ? AND lng >= ? AND lng <= ?", minLat, maxLat, minLng, maxLng)
}

// AccommodationQuery applies the listing filters for accommodations.
// The base predicate always excludes soft-deleted rows.
func AccommodationQuery(db *gorm.DB, q dto.ListQuery) *gorm.DB {
	tx := db.Where("is_active = ?", true)

	if HasFilter(q.Type) {
		tx = tx.Where("type = ?", q.Type)
	}
	if HasFilter(q.Region) {
		tx = tx.Where("region = ?", q.Region)
	}
	if q.Rating != nil {
		tx = tx.Where("rating >= ?", *q.Rating)
	}
	if q.Q != "" {
		tx = searchClause(tx, q.Q, []string{"name", "description", "location"})
	}
	return geoClause(tx, q)
}

// AttractionQuery applies the listing filters for attractions.
func AttractionQuery(db *gorm.DB, q dto.ListQuery) *gorm.DB {
	tx := db.Where("is_active = ?", true)

	if HasFilter(q.Category) {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Rating != nil {
		tx = tx.Where("rating >= ?", *q.Rating)
	}
	if q.Q != "" {
		tx = searchClause(tx, q.Q, []string{"name", "description"})
	}
	return geoClause(tx, q)
}

// GuideQuery applies the listing filters for guides, which are users with
// the guide role.
func GuideQuery(db *gorm.DB, q dto.ListQuery) *gorm.DB {
	tx := db.Where("role = ? AND is_active = ?", constants.RoleGuide, true)

	if HasFilter(q.Location) {
		tx = tx.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if HasFilter(q.Specialty) {
		tx = tx.Where("? = ANY(specialties)", q.Specialty)
	}
	if HasFilter(q.Language) {
		tx = tx.Where("? = ANY(languages)", q.Language)
	}
	if HasFilter(q.Verified) {
		tx = tx.Where("verified = ?", q.Verified == "true")
	}
	if q.Rating != nil {
		tx = tx.Where("rating >= ?", *q.Rating)
	}
	if q.Q != "" {
		tx = searchClause(tx, q.Q, []string{"name", "bio", "location"})
	}
	return tx
}

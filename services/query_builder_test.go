package services

import (
	"net/http/httptest"
	"strings"
	"testing"

	"taprobane/dto"
	"taprobane/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(listContext(t, ""))

	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected page=1 limit=10, got page=%d limit=%d", q.Page, q.Limit)
	}
	if q.Rating != nil || q.Lat != nil || q.Lng != nil {
		t.Error("expected unset numeric filters to stay nil")
	}
}

func TestParseListQueryValues(t *testing.T) {
	q := ParseListQuery(listContext(t, "type=Resort&region=all&rating=4.5&page=3&limit=20&lat=6.9&lng=79.8&radius=50&q=beach&sort=-rating"))

	if q.Type != "Resort" || q.Region != "all" || q.Q != "beach" || q.Sort != "-rating" {
		t.Errorf("unexpected string filters: %+v", q)
	}
	if q.Page != 3 || q.Limit != 20 {
		t.Errorf("expected page=3 limit=20, got %d/%d", q.Page, q.Limit)
	}
	if q.Rating == nil || *q.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", q.Rating)
	}
	if q.Lat == nil || *q.Lat != 6.9 || q.Lng == nil || *q.Lng != 79.8 {
		t.Errorf("expected lat/lng parsed, got %v/%v", q.Lat, q.Lng)
	}
	if q.Radius != 50 {
		t.Errorf("expected radius carried through, got %v", q.Radius)
	}
}

func TestParseListQueryIgnoresInvalidNumbers(t *testing.T) {
	q := ParseListQuery(listContext(t, "page=zero&limit=-5&rating=high"))

	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected defaults on invalid input, got page=%d limit=%d", q.Page, q.Limit)
	}
	if q.Rating != nil {
		t.Error("expected invalid rating ignored")
	}
}

func TestHasFilter(t *testing.T) {
	if HasFilter("") {
		t.Error("empty value should not filter")
	}
	if HasFilter("all") {
		t.Error("\"all\" sentinel should not filter")
	}
	if !HasFilter("Resort") {
		t.Error("real value should filter")
	}
}

func TestOffsetAndPages(t *testing.T) {
	if got := Offset(1, 10); got != 0 {
		t.Errorf("Offset(1,10) = %d, want 0", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Errorf("Offset(3,10) = %d, want 20", got)
	}

	if got := Pages(0, 10); got != 0 {
		t.Errorf("Pages(0,10) = %d, want 0", got)
	}
	if got := Pages(10, 10); got != 1 {
		t.Errorf("Pages(10,10) = %d, want 1", got)
	}
	if got := Pages(11, 10); got != 2 {
		t.Errorf("Pages(11,10) = %d, want 2", got)
	}
	if got := Pages(95, 10); got != 10 {
		t.Errorf("Pages(95,10) = %d, want 10", got)
	}
}

// The pagination invariant: summing page counts over all pages covers total
// exactly once.
func TestPaginationCoversTotal(t *testing.T) {
	const total, limit = 47, 10

	covered := 0
	pages := Pages(total, limit)
	for page := 1; page <= pages; page++ {
		start := Offset(page, limit)
		count := total - start
		if count > limit {
			count = limit
		}
		if count > limit {
			t.Fatalf("page %d count %d exceeds limit", page, count)
		}
		covered += count
	}
	if covered != total {
		t.Errorf("pages cover %d items, want %d", covered, total)
	}
}

func TestBoundingBox(t *testing.T) {
	minLat, maxLat, minLng, maxLng := BoundingBox(6.9, 79.8)

	if minLat != 6.4 || maxLat != 7.4 {
		t.Errorf("lat box = [%v,%v], want [6.4,7.4]", minLat, maxLat)
	}
	if minLng != 79.3 || maxLng != 80.3 {
		t.Errorf("lng box = [%v,%v], want [79.3,80.3]", minLng, maxLng)
	}
}

// dryRunDB builds SQL without a live connection, so the scope builders can
// be inspected statement by statement.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=app dbname=app",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// Soft-deleted rows must be invisible to every listing, with or without
// filters.
func TestAccommodationQueryExcludesInactive(t *testing.T) {
	db := dryRunDB(t)

	var out []models.Accommodation
	stmt := AccommodationQuery(db.Model(&models.Accommodation{}), dto.ListQuery{}).Find(&out).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "is_active = $1") {
		t.Errorf("missing soft-delete predicate: %s", sql)
	}
	if len(stmt.Vars) == 0 || stmt.Vars[0] != true {
		t.Errorf("expected is_active bound to true, vars %v", stmt.Vars)
	}
}

func TestAttractionQueryExcludesInactive(t *testing.T) {
	db := dryRunDB(t)

	var out []models.Attraction
	stmt := AttractionQuery(db.Model(&models.Attraction{}), dto.ListQuery{Category: "heritage"}).Find(&out).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "is_active = $1") {
		t.Errorf("missing soft-delete predicate: %s", sql)
	}
	if !strings.Contains(sql, "category = $2") {
		t.Errorf("missing category filter: %s", sql)
	}
}

func TestGuideQueryBasePredicate(t *testing.T) {
	db := dryRunDB(t)

	var out []models.User
	stmt := GuideQuery(db.Model(&models.User{}), dto.ListQuery{}).Find(&out).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "role = $1 AND is_active = $2") {
		t.Errorf("missing guide base predicate: %s", sql)
	}
}

// The "all" sentinel disables the verified filter like every other optional
// filter; real values bind a boolean.
func TestGuideQueryVerifiedSentinel(t *testing.T) {
	db := dryRunDB(t)

	var all []models.User
	stmt := GuideQuery(db.Model(&models.User{}), dto.ListQuery{Verified: "all"}).Find(&all).Statement
	if sql := stmt.SQL.String(); strings.Contains(sql, "verified") {
		t.Errorf("\"all\" must not filter on verified: %s", sql)
	}

	var verified []models.User
	stmt = GuideQuery(db.Model(&models.User{}), dto.ListQuery{Verified: "true", Specialty: "wildlife"}).Find(&verified).Statement
	sql := stmt.SQL.String()
	if !strings.Contains(sql, "verified = ") {
		t.Errorf("missing verified filter: %s", sql)
	}
	if !strings.Contains(sql, "= ANY(specialties)") {
		t.Errorf("missing specialty array filter: %s", sql)
	}
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		sort     string
		fallback string
		want     string
	}{
		{"", "-createdAt", "created_at DESC"},
		{"rating", "-createdAt", "rating ASC"},
		{"-rating", "-createdAt", "rating DESC"},
		{"pricePerNight", "-createdAt", "price_per_night ASC"},
		{"name;drop table", "-createdAt", "namedroptable ASC"},
		{";--", "-createdAt", "created_at DESC"},
	}

	for _, tc := range cases {
		if got := OrderClause(tc.sort, tc.fallback); got != tc.want {
			t.Errorf("OrderClause(%q,%q) = %q, want %q", tc.sort, tc.fallback, got, tc.want)
		}
	}
}

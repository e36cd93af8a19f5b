package dto

// ListQuery is the common set of optional listing filters. A filter applies
// only when present and not the "all" sentinel; Rating is a minimum
// threshold. Radius is accepted for API compatibility and unused: geo search
// is a fixed bounding box around Lat/Lng.
type ListQuery struct {
	Type      string
	Region    string
	Category  string
	Location  string
	Specialty string
	Language  string
	Verified  string
	Status    string
	Rating    *float64
	Q         string
	Lat       *float64
	Lng       *float64
	Radius    float64
	Page      int
	Limit     int
	Sort      string
}

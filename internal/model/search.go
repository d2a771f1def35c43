package model

// SearchScope restricts which collections a search covers.
type SearchScope string

const (
	SearchAll      SearchScope = "all"
	SearchStudents SearchScope = "students"
	SearchCourses  SearchScope = "courses"
)

// SearchHitType tags each search result with the collection it came from.
type SearchHitType string

const (
	HitStudent SearchHitType = "student"
	HitCourse  SearchHitType = "course"
)

// SearchQuery is bound from the query string of GET /api/search. An absent
// type means all; a present type must name a scope.
type SearchQuery struct {
	Q    string       `form:"q"`
	Type *SearchScope `form:"type" binding:"omitnil,oneof=all students courses"`
}

// Scope returns the requested scope, defaulting to SearchAll.
func (q SearchQuery) Scope() SearchScope {
	if q.Type == nil {
		return SearchAll
	}
	return *q.Type
}

// SearchResult is one tagged match. Data holds a Student or a Course.
type SearchResult struct {
	Type SearchHitType `json:"type"`
	Data any           `json:"data"`
}

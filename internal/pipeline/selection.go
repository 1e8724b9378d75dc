package pipeline

import (
	"time"
)

// PageSize is the fixed number of day groups shown per page.
const PageSize = 10

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusToday    Status = "today"
	StatusPast     Status = "past"
	StatusAll      Status = "all"
)

type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByName  SortKey = "name"
	SortByPrice SortKey = "price"
)

type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

// Selection is the complete set of user-chosen filter, sort and page
// parameters for one view. It is an immutable value: the With* setters
// return a modified copy and never touch unrelated fields, so changing
// the status cannot clobber a date range the user already picked.
type Selection struct {
	Search string
	Status Status
	From   *time.Time
	To     *time.Time
	SortBy SortKey
	Dir    SortDir
	Page   int
}

// NewSelection returns the defaults used when the view is first opened.
func NewSelection() Selection {
	return Selection{
		Status: StatusUpcoming,
		SortBy: SortByDate,
		Dir:    Ascending,
		Page:   1,
	}
}

func (s Selection) WithSearch(q string) Selection {
	s.Search = q
	return s
}

func (s Selection) WithStatus(st Status) Selection {
	s.Status = st
	return s
}

func (s Selection) WithRange(from, to *time.Time) Selection {
	s.From = from
	s.To = to
	return s
}

func (s Selection) WithSort(key SortKey, dir SortDir) Selection {
	s.SortBy = key
	s.Dir = dir
	return s
}

func (s Selection) WithPage(page int) Selection {
	s.Page = page
	return s
}

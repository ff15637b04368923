package jobsapimodels

import (
	"strconv"
	"unicode/utf8"

	joblistingsapimodels "jobs-board-backend/models/api/joblistings"
)

const MinSearchLength = 2

type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	IsFavorite  bool   `json:"isFavorite"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	FirstPage   int `json:"firstPage"`
	LastPage    int `json:"lastPage"`
}

type JobListResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Job      `json:"data"`
}

type FavoriteResponse struct {
	Message    string `json:"message"`
	IsFavorite bool   `json:"isFavorite"`
}

type JobFilter struct {
	Search string `json:"search"` // job title to search recommendations by
	Page   int    `json:"page"`   // zero based
}

// ParsePage accepts the raw page query value, anything that is not a non-negative number becomes 0
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func (f JobFilter) GetPage() int {
	if f.Page < 0 {
		return 0
	}
	return f.Page
}

func (f JobFilter) Validate() string {
	if f.Search != "" && utf8.RuneCountInString(f.Search) < MinSearchLength {
		return "Search query must be at least 2 characters long"
	}
	return ""
}

func JobConvert(rec joblistingsapimodels.Job) Job {
	return Job{
		ID:          rec.ID,
		Title:       rec.JobTitle,
		Description: rec.Description,
		Company:     rec.Company,
	}
}

func PaginationConvert(rec joblistingsapimodels.Pagination) Pagination {
	return Pagination{
		CurrentPage: rec.CurrentPage,
		FirstPage:   rec.FirstPage,
		LastPage:    rec.LastPage,
	}
}

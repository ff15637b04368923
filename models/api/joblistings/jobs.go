package joblistingsapimodels

// Job as returned by the external job API
type Job struct {
	ID          int    `json:"id"`
	JobTitle    string `json:"job_title"`
	Description string `json:"description"`
	Company     string `json:"company"`
}

// Pagination is zero based
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	FirstPage   int `json:"firstPage"`
	LastPage    int `json:"lastPage"`
}

type JobListResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Job      `json:"data"`
}

type RecommendationRequest struct {
	JobTitle string `json:"jobTitle"`
}

type RecommendationResponse struct {
	SearchQuery struct {
		JobTitle string `json:"jobTitle"`
	} `json:"searchQuery"`
	JobIDs []int `json:"jobIds"`
}

type ErrorData struct {
	Message string `json:"message"`
}

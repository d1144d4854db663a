package dto

type MatchItemResponse struct {
	ProjectID            int64    `json:"project_id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Tags                 string   `json:"tags"`
	ExpectedBudget       *int64   `json:"expected_budget"`
	ExpectedTimelineDays *int64   `json:"expected_timeline_days"`
	MatchCount           int      `json:"match_count"`
	MatchedSkills        []string `json:"matched_skills"`
}

type SimilarProjectResponse struct {
	ProjectID int64   `json:"project_id"`
	Title     string  `json:"title"`
	Tags      string  `json:"tags"`
	Score     float64 `json:"score"`
}

type BatchMatchResponse struct {
	UsersProcessed int `json:"users_processed"`
	MatchesStored  int `json:"matches_stored"`
	UsersFailed    int `json:"users_failed"`
}

package entity

// AnalyzeRequest is the body of POST /api/analyze. Question is a pointer so a
// missing field can be told apart from an empty one.
type AnalyzeRequest struct {
	Question *string `json:"question"`
}

type AnalyzeResponse struct {
	Analysis     *Analysis `json:"analysis"`
	SubmissionID string    `json:"submissionId,omitempty"`
}

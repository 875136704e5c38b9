package entity

const (
	defaultListLimit = 30
	maxListLimit     = 100
)

type CreateSubmissionRequest struct {
	Question    *string `json:"question"`
	Explanation *string `json:"explanation"`
}

type CreateSubmissionResponse struct {
	Submission *Submission `json:"submission"`
}

type GetSubmissionResponse struct {
	Submission *Submission `json:"submission"`
}

type ListSubmissionsRequest struct {
	Limit int
}

func (ls *ListSubmissionsRequest) Normalize() {
	if ls.Limit <= 0 {
		ls.Limit = defaultListLimit
	}

	ls.Limit = min(ls.Limit, maxListLimit)
}

type ListSubmissionsResponse struct {
	Items []*Submission `json:"items"`
}

// ExportedFile is a rendered submission ready to be sent as a download
type ExportedFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

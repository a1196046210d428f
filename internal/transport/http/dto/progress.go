package dto

import "github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"

// UpdateMedalsRequest uses pointers so an omitted or null medal leaves the current value.
type UpdateMedalsRequest struct {
	Medal1 *bool `json:"medal1"`
	Medal2 *bool `json:"medal2"`
	Medal3 *bool `json:"medal3"`
	Medal4 *bool `json:"medal4"`
}

func (r UpdateMedalsRequest) ToDomain() domain.MedalUpdate {
	return domain.MedalUpdate{
		Medal1: domain.FromPtr(r.Medal1),
		Medal2: domain.FromPtr(r.Medal2),
		Medal3: domain.FromPtr(r.Medal3),
		Medal4: domain.FromPtr(r.Medal4),
	}
}

type ProgressResponse struct {
	Medal1          bool `json:"medal1"`
	Medal2          bool `json:"medal2"`
	Medal3          bool `json:"medal3"`
	Medal4          bool `json:"medal4"`
	InitialTestDone bool `json:"initial_test_done"`
	ExitTestDone    bool `json:"exit_test_done"`
}

func NewProgressResponse(v domain.ProgressView) ProgressResponse {
	return ProgressResponse{
		Medal1:          v.Medal1,
		Medal2:          v.Medal2,
		Medal3:          v.Medal3,
		Medal4:          v.Medal4,
		InitialTestDone: v.InitialTestDone,
		ExitTestDone:    v.ExitTestDone,
	}
}

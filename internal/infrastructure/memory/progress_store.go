package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// ProgressStore stands in for the external progress system.
// Set Fail or Reject to simulate outages and refused writes.
type ProgressStore struct {
	mu      sync.Mutex
	records []domain.ProgressRecord

	Fail   error
	Reject bool
}

func NewProgressStore(records ...domain.ProgressRecord) *ProgressStore {
	return &ProgressStore{records: append([]domain.ProgressRecord(nil), records...)}
}

func (s *ProgressStore) ReadAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail != nil {
		return nil, s.Fail
	}
	out := make([]domain.ProgressRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Upsert replaces the first record for studentID or appends a new one.
func (s *ProgressStore) Upsert(ctx context.Context, studentID string, m domain.Medals) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail != nil {
		return false, s.Fail
	}
	if s.Reject {
		return false, nil
	}

	id := strings.TrimSpace(studentID)
	for i := range s.records {
		if strings.TrimSpace(s.records[i].StudentID) == id {
			s.records[i].Medals = m
			return true, nil
		}
	}
	s.records = append(s.records, domain.ProgressRecord{StudentID: id, Medals: m})
	return true, nil
}

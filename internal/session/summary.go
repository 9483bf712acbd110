package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/report"
)

// Summary is the outcome of a completed session.
type Summary struct {
	SessionID uuid.UUID
	Duration  time.Duration
	Answered  int
	Total     int
	Answers   answers.Set
	Report    *report.Report
}

// Export wraps the summary for serialization.
func (s *Summary) Export(now time.Time) *report.Export {
	return report.NewExport(s.SessionID, s.Answers, s.Report, now)
}

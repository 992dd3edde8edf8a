package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) dailyReport(c *gin.Context) {
	date, ok := s.parseDateQuery(c)
	if !ok {
		return
	}
	report, err := s.reports.Daily(date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}

func (s *Server) printDailyReport(c *gin.Context) {
	date, ok := s.parseDateQuery(c)
	if !ok {
		return
	}
	jobID, err := s.reports.PrintDaily(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"job_id": jobID})
}

// parseDateQuery reads an optional YYYY-MM-DD date query parameter. A
// zero return with ok=true means today.
func (s *Server) parseDateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, s.loc)
	if err != nil {
		respondBadRequest(c, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

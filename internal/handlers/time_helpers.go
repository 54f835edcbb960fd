package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

// --------------------------------------------------
// Parâmetros comuns (fuso do salão)
// --------------------------------------------------

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.FromError(c, httperr.ErrBusiness("invalid_id"), "", "")
		return 0, false
	}
	return uint(id), true
}

// ano da query ou ano corrente no fuso do salão
func yearQuery(c *gin.Context, loc *time.Location) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().In(loc).Year(), true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		httperr.FromError(c, httperr.ErrBusiness("invalid_date"), "", "")
		return 0, false
	}
	return year, true
}

func dateQuery(c *gin.Context, loc *time.Location) (time.Time, bool) {
	date, err := timezone.ParseDateOr(
		c.Query("date"),
		timezone.StartOfDay(time.Now(), loc),
		loc,
	)
	if err != nil {
		httperr.FromError(c, err, "", "")
		return time.Time{}, false
	}
	return date, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_body"), "", "")
		return false
	}
	return true
}

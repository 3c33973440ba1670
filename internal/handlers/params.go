package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// parseQuery reads window, tz, from and to. Absent values are left zero so
// the service defaults apply. Every invalid parameter is reported.
func parseQuery(c *gin.Context, withRange bool) (service.Query, []apierror.FieldError) {
	var q service.Query
	var errs []apierror.FieldError

	if raw, ok := c.GetQuery("window"); ok {
		w, err := wellbeing.ParseWindow(raw)
		if err != nil {
			errs = append(errs, apierror.InvalidWindow(raw))
		}
		q.Window = w
	}

	if raw, ok := c.GetQuery("tz"); ok {
		loc, err := wellbeing.LoadLocation(raw)
		if err != nil {
			errs = append(errs, apierror.InvalidTimezone(raw))
		}
		q.Location = loc
	}

	if !withRange {
		return q, errs
	}

	dateLoc := q.Location
	if dateLoc == nil {
		dateLoc = time.UTC
	}
	if raw, ok := c.GetQuery("from"); ok {
		from, err := parseBound(raw, dateLoc, false)
		if err != nil {
			errs = append(errs, apierror.InvalidDate("from", raw))
		}
		q.Range.From = from
	}
	if raw, ok := c.GetQuery("to"); ok {
		to, err := parseBound(raw, dateLoc, true)
		if err != nil {
			errs = append(errs, apierror.InvalidDate("to", raw))
		}
		q.Range.To = to
	}
	if len(errs) == 0 && q.Range.Validate() != nil {
		errs = append(errs, apierror.InvalidRange())
	}

	return q, errs
}

// parseBound accepts RFC 3339 or a bare date. A bare "to" date covers the
// whole day.
func parseBound(raw string, loc *time.Location, end bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc).Add(-time.Nanosecond), nil
	}
	return d, nil
}

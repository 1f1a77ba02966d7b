package leaves

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type ApplyLeaveRequest struct {
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
	Reason    string `json:"reason" form:"reason"`
}

func (r *ApplyLeaveRequest) Validate() map[string]string {
	errors := make(map[string]string)

	start, startErr := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if startErr != nil {
		errors["startDate"] = "startDate must be a valid date (YYYY-MM-DD)"
	}
	end, endErr := time.Parse(dateLayout, strings.TrimSpace(r.EndDate))
	if endErr != nil {
		errors["endDate"] = "endDate must be a valid date (YYYY-MM-DD)"
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errors["endDate"] = "endDate must not be before startDate"
	}

	return errors
}

func (r *ApplyLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	end, _ := time.Parse(dateLayout, strings.TrimSpace(r.EndDate))
	return start, end
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

package usecase

import "time"

const dateLayout = "2006-01-02"

// parseDateRange turns the optional start/end filter strings into inclusive
// bounds; the end date is normalized to the last instant of that day.
func parseDateRange(startDate, endDate string) (start, end *time.Time, err error) {
	if startDate != "" {
		s, parseErr := time.ParseInLocation(dateLayout, startDate, time.Local)
		if parseErr != nil {
			return nil, nil, parseErr
		}
		start = &s
	}
	if endDate != "" {
		e, parseErr := time.ParseInLocation(dateLayout, endDate, time.Local)
		if parseErr != nil {
			return nil, nil, parseErr
		}
		eod := e.Add(24*time.Hour - time.Millisecond)
		end = &eod
	}
	return start, end, nil
}

// Package availability computes the open-hours calendar and the bookable
// slots derived from it.
package availability

import (
	"time"

	"bookly/models"
)

// Window returns the configured open window for the given weekday. The
// second return is false when the business is closed that day, including
// days the owner never configured.
//
// Window bounds come straight from owner-entered profile data; no
// time-ordering validation happens here.
func Window(business *models.Business, day time.Weekday) (models.DayWindow, bool) {
	w := business.Availability[day]
	if !w.Open {
		return models.DayWindow{}, false
	}
	return w, true
}

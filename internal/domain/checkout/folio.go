package checkout

import (
	"strconv"
	"time"
)

// NewFolio builds the human-readable receipt identifier shown on the
// boleta: YYYYMMDD plus the last six digits of the epoch millisecond
// timestamp. Not collision-safe under rapid sequential checkouts; accepted
// for this storefront's single-session model.
func NewFolio(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return now.Format("20060102") + "-" + millis
}

package service

import "time"

// Clock supplies the current time. Day boundaries follow the location of the returned time.
type Clock func() time.Time

// SystemClock reports wall time in loc, truncated to the precision postgres stores
func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc).Truncate(time.Microsecond)
	}
}

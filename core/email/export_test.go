package email

import "time"

// SetClock pins the time used for file names.
func SetClock(s EmailSender, now func() time.Time) {
	s.(*DevSender).now = now
}

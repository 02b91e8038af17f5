package doses

import "time"

// SetNowForTest overrides the service clock; compiled only in tests.
func (s *Service) SetNowForTest(now func() time.Time) {
	s.now = now
}

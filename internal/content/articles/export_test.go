package articles

import "time"

// SetNow overrides the extraction clock for tests.
func (e *Extractor) SetNow(now func() time.Time) {
	e.now = now
}

package usecase

import "time"

// Clock supplies the current time. Slot windows and session timestamps read it.
type Clock func() time.Time

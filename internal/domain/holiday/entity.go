package holiday

import (
	"time"
)

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Year      int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package repotypes

import (
	"time"
)

type CallFilter struct {
	Tool   string
	Status string
	From   time.Time
	To     time.Time
	Limit  int
}

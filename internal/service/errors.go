package service

import "fmt"

var (
	ErrUnknownMetric  = fmt.Errorf("unknown metric")
	ErrUnknownAction  = fmt.Errorf("unsupported diagnosis action")
	ErrUnknownSource  = fmt.Errorf("unknown log source")
	ErrCannotGetCalls = fmt.Errorf("cannot get tool calls")
	ErrCannotGetStats = fmt.Errorf("cannot get tool stats")
)

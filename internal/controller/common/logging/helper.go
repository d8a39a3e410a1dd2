package logginghelper

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func LogCallReceived(tool string, args map[string]any) {
	log.WithFields(log.Fields{
		"tool": tool,
		"args": len(args),
	}).Info("Received tool call")
}

func LogCallServed(tool string, took time.Duration, count int) {
	log.WithFields(log.Fields{
		"tool":    tool,
		"took_ms": took.Milliseconds(),
		"results": count,
	}).Info("Tool call served")
}

func LogCallFailed(tool string, err error) {
	log.WithFields(log.Fields{
		"tool":  tool,
		"error": err,
	}).Warn("Tool call failed")
}

package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger configures the global logrus logger. Output goes to stderr so
// stdout stays free for the MCP stdio transport.
func SetupLogger(level, format string) {
	setup(os.Stderr, level, format)
}

func setup(out io.Writer, level, format string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetOutput(out)
	log.SetReportCaller(true)

	prettyfier := func(frame *runtime.Frame) (function string, file string) {
		return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
	}

	if format == "text" {
		log.SetFormatter(&log.TextFormatter{
			CallerPrettyfier: prettyfier,
			TimestampFormat:  timestampFormat,
			FullTimestamp:    true,
		})
	} else {
		log.SetFormatter(&log.JSONFormatter{
			CallerPrettyfier: prettyfier,
			TimestampFormat:  timestampFormat,
		})
	}

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}

package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors log entries into path.trace (trace and debug) and
// path.warn (info and above) as JSON lines.
func AddTracer(logger *log.Logger, path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.InfoLevel:  path + ".warn",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}

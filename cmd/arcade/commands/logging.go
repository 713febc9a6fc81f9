package commands

import (
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
)

var (
	logLevel = "info"
	logFile  = ""
)

func setupLogging() {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).WithField("level", logLevel).Warn("invalid log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if logFile == "" {
		return
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.WithError(err).WithField("file", logFile).Fatal("unable to open log file")
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(f)
}

// quietTerminal stops log lines from drawing over a terminal ui.
func quietTerminal() {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	}
}

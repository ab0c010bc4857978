package logger

import (
	"fmt"
	"io"
	"sort"

	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/odpf/console/config"
)

type plainFormatter int

func (*plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if len(entry.Data) == 0 {
		return []byte(fmt.Sprintf("%s\n", entry.Message)), nil
	}
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var data string
	for _, key := range keys {
		data += fmt.Sprintf("%s: %v ", key, entry.Data[key])
	}
	return []byte(fmt.Sprintf("%s %s\n", entry.Message, data)), nil
}

// NewDefaultLogger initializes plain logger
func NewDefaultLogger() log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(config.LogLevelInfo.String()),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}

// NewClientLogger initializes client logger based on log configuration
func NewClientLogger(logConfig config.LogConfig) log.Logger {
	if logConfig.Level == "" {
		return NewDefaultLogger()
	}

	return log.NewLogrus(
		log.LogrusWithLevel(logConfig.Level.String()),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}

// NewWriterLogger writes plain info logs to w
func NewWriterLogger(w io.Writer) log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(config.LogLevelInfo.String()),
		log.LogrusWithWriter(w),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}

package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewFileLogger opens a zerolog logger appending to path.
// The playground TUI owns the terminal while it runs, so debug events go to
// a file instead of stderr. The returned closer flushes and closes the file.
func NewFileLogger(path string) (zerolog.Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, file, nil
}

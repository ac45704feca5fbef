package removebg

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// errorLog appends one line per failed call. Each append opens and closes the
// file so concurrent clients sharing a path never interleave partial lines.
type errorLog struct {
	path string
	mu   sync.Mutex
}

func (l *errorLog) append(name string, status int, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return err
	}

	defer file.Close()

	line := fmt.Sprintf("%s unable to save %s due to %s (status %d)\n", time.Now().Format(time.RFC3339), name, reason, status)

	if _, err := file.WriteString(line); err != nil {
		return err
	}

	return nil
}

package tools

/*
Append-only run log of per-trial records
*/

import (
	"fmt"
	"os"
)

type RunLog struct {
	f *os.File
}

// Opens (or creates) the run log for appending
func OpenRunLog(fileName string) (*RunLog, error) {
	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %v", err)
	}
	return &RunLog{f: f}, nil
}

// Appends one record line
func (l *RunLog) Record(line string) {
	_, _ = l.f.WriteString(line + "\n")
}

func (l *RunLog) Close() {
	_ = l.f.Close()
}

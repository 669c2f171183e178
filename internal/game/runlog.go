package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"crimson-depths/internal/logger"

	"github.com/sirupsen/logrus"
)

// RunLog records statistics for one run.
type RunLog struct {
	Timestamp    time.Time `json:"timestamp"`
	Seed         int64     `json:"seed"`
	Turns        int       `json:"turns"`
	Kills        int       `json:"kills"`
	DeepestLevel int       `json:"deepest_level"`
	LevelReached int       `json:"level_reached"`
	CauseOfDeath string    `json:"cause_of_death"`
}

// saveRunLog appends the finished run as one JSON line to runs.jsonl.
// Failures are logged and otherwise ignored.
func saveRunLog(rl RunLog) {
	log := logger.For("engine")
	if rl.Timestamp.IsZero() {
		rl.Timestamp = time.Now()
	}
	dir, err := runLogDir()
	if err != nil {
		log.WithError(err).Warn("run log: cannot determine data dir")
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithError(err).Warn("run log: cannot create data dir")
		return
	}
	path := filepath.Join(dir, "runs.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.WithError(err).Warn("run log: cannot open file")
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		log.WithError(err).Warn("run log: cannot marshal JSON")
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		log.WithFields(logrus.Fields{"path": path}).WithError(err).Warn("run log: write failed")
	}
}

// runLogDir returns $XDG_DATA_HOME/crimson-depths, defaulting to
// ~/.local/share/crimson-depths.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "crimson-depths"), nil
}

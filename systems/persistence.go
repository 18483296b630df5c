package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/doorkey/logging"
	"github.com/quasilyte/gdata"
)

// SavedProgress is the progress data stored on disk.
type SavedProgress struct {
	LevelIndex string `json:"levelIndex"`
}

// itemStore is the part of gdata.Manager persistence uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const progressItem = "progress"

var store itemStore

// InitPersistence opens the gdata storage for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.New("persistence").Warn("could not initialize persistence", "error", err)
		return err
	}
	store = m
	return nil
}

// LoadProgress returns the last saved progress, or nil when there is none
// or persistence is unavailable.
func LoadProgress() (*SavedProgress, error) {
	if store == nil {
		return nil, nil
	}
	log := logging.New("persistence")

	data, err := store.LoadItem(progressItem)
	if err != nil {
		log.Warn("could not load progress", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Warn("could not parse saved progress", "error", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress records the level the player reached. Callers decide how
// loud a failure is.
func SaveProgress(index string) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(SavedProgress{LevelIndex: index})
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := store.SaveItem(progressItem, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

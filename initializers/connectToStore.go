package initializers

import (
	"os"

	"go.uber.org/zap"

	"github.com/vastrakart/vastrakart-api/store"
)

const defaultStorePath = "vastrakart.db"

// ConnectToStore opens the persisted store file named by STORE_PATH. When
// the file cannot be opened the service still starts: a nil store degrades
// every read to an empty collection and skips every write.
func ConnectToStore() *store.Store {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = defaultStorePath
	}

	st, err := store.Open(path)
	if err != nil {
		zap.S().Errorf("persisted store unavailable, running stateless: %v", err)
		return nil
	}
	zap.S().Infof("persisted store opened at %s", path)
	return st
}

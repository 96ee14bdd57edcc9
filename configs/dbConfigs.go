package configs

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbConfigData struct {
	Id                    primitive.ObjectID `bson:"_id"`
	Title                 string             `bson:"title"`
	CorsAllowedOrigins    []string           `bson:"corsAllowedOrigins"`
	DisableRegistration   bool               `bson:"disableRegistration"`
	DisableActivityEvents bool               `bson:"disableActivityEvents"`
}

const DbConfigsTitle = "server configs"

var rwm sync.RWMutex
var dbConfigs DbConfigData

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

func SetDbConfigs(data DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = data
}

// LoadDbConfigs calls fetch immediately and then every interval until stop is closed.
func LoadDbConfigs(fetch func() error, interval time.Duration, stop <-chan struct{}) {
	_ = fetch()
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			_ = fetch()
		}
	}
}

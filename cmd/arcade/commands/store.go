package commands

import (
	"io"

	"github.com/battlesnakeio/arcade/store"
	"github.com/battlesnakeio/arcade/store/filestore"
	"github.com/battlesnakeio/arcade/store/redisstore"
	"github.com/battlesnakeio/arcade/store/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	storeBackend = "file"
	storeArgs    = ""
)

func openStore() (store.Store, error) {
	var s store.Store
	var err error
	switch storeBackend {
	case "inmem":
		s = store.InMemStore()
	case "file":
		s = filestore.NewFileStore(storeArgs)
	case "redis":
		s, err = redisstore.NewStore(storeArgs)
	case "sql":
		s, err = sqlstore.NewSQLStore(storeArgs)
	default:
		return nil, errors.Errorf("invalid store %q", storeBackend)
	}
	if err != nil {
		return nil, err
	}
	return store.InstrumentStore(s), nil
}

// mustOpenStore opens the configured store and returns a func closing it.
func mustOpenStore() (store.Store, func()) {
	s, err := openStore()
	if err != nil {
		log.WithError(err).WithField("store", storeBackend).Fatal("unable to start up high score store")
	}
	return s, func() {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
}

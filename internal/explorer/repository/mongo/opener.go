package mongo

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// Opener connects a fresh Store per scan or per process.
type Opener struct {
	uri      string
	database string
	coin     model.Coin
	network  model.Network
	metrics  Metrics
}

func NewOpener(uri, database string, coin model.Coin, network model.Network, metrics Metrics) *Opener {
	return &Opener{uri: uri, database: database, coin: coin, network: network, metrics: metrics}
}

// Open connects to MongoDB. The caller owns the returned store and must Close it.
func (o *Opener) Open(ctx context.Context) (*Store, error) {
	start := time.Now()
	db, err := Connect(ctx, o.uri, o.database)
	o.metrics.Observe("open", o.coin, o.network, err, start)
	if err != nil {
		return nil, err
	}
	return NewStore(db, o.coin, o.network, o.metrics), nil
}

// OpenLazy returns a store without waiting for MongoDB. Long-running readers
// use it so an outage at startup surfaces per request.
func (o *Opener) OpenLazy(ctx context.Context) (*Store, error) {
	start := time.Now()
	db, err := Dial(ctx, o.uri, o.database)
	o.metrics.Observe("open_lazy", o.coin, o.network, err, start)
	if err != nil {
		return nil, err
	}
	return NewStore(db, o.coin, o.network, o.metrics), nil
}

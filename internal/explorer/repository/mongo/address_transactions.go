package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddressTransactions returns the history of address in append order.
// Unknown addresses have an empty history.
func (s *Store) AddressTransactions(ctx context.Context, address string) ([]model.TxRef, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("address_transactions", err, start)
	}()

	filter := bson.D{{Key: "address", Value: address}}
	opts := options.FindOne().SetProjection(addressRecordProjection)

	var record model.AddressRecord
	err = s.address.FindOne(ctx, filter, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = nil
		return []model.TxRef{}, nil
	}
	if err != nil {
		err = storeError("address transactions "+address, err)
		return nil, err
	}
	if record.Transactions == nil {
		return []model.TxRef{}, nil
	}
	return record.Transactions, nil
}

// Addresses lists every address record with its history.
func (s *Store) Addresses(ctx context.Context) ([]model.AddressRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("addresses", err, start)
	}()

	cursor, err := s.address.Find(ctx, bson.D{}, options.Find().SetProjection(addressRecordProjection))
	if err != nil {
		err = storeError("find addresses", err)
		return nil, err
	}

	records := make([]model.AddressRecord, 0)
	if err = cursor.All(ctx, &records); err != nil {
		err = fmt.Errorf("decode addresses: %w", err)
		return nil, err
	}
	return records, nil
}

// AddressList lists the known addresses without their history.
func (s *Store) AddressList(ctx context.Context) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("address_list", err, start)
	}()

	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "address", Value: 1}})
	cursor, err := s.address.Find(ctx, bson.D{}, opts)
	if err != nil {
		err = storeError("find address list", err)
		return nil, err
	}

	var records []model.AddressRecord
	if err = cursor.All(ctx, &records); err != nil {
		err = fmt.Errorf("decode address list: %w", err)
		return nil, err
	}

	addresses := make([]string, 0, len(records))
	for _, record := range records {
		addresses = append(addresses, record.Address)
	}
	return addresses, nil
}

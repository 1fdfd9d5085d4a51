package export

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAddressTransactions(ctx context.Context, rows []model.AddressTransaction) error
		InsertSpecialTransactions(ctx context.Context, rows []model.SpecialTransactionExport) error
	}
	Metrics interface {
		ObserveFlush(err error, blocks int, started time.Time)
		IncDropped()
	}
)

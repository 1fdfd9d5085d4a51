package mongo

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// storeError classifies a driver error for the caller.
func storeError(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", operation, model.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", operation, model.ErrDuplicateKey, err)
	default:
		return fmt.Errorf("%s: %w: %w", operation, model.ErrStoreUnavailable, err)
	}
}

func isNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 26 || cmdErr.Name == "NamespaceNotFound"
	}
	return false
}

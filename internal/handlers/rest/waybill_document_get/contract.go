//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_document_get_test
package waybill_document_get

import (
	"context"

	"freightforge/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Document(ctx context.Context, reference string) ([]byte, error)
}

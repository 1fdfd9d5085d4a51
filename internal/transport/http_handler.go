package transport

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPHandler serves the explorer read API over gin.
type HTTPHandler struct {
	svc     ExplorerService
	metrics ReadMetrics
	logger  *zap.Logger
}

func NewHTTPHandler(svc ExplorerService, metrics ReadMetrics, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, metrics: metrics, logger: logger}
}

// Register mounts the read routes under /api/explorer.
func (h *HTTPHandler) Register(router gin.IRouter) {
	api := router.Group("/api/explorer")

	api.GET("/utxos", h.wrap("utxos", func(ctx context.Context, c *gin.Context) (any, error) {
		if _, ok := c.GetQuery("address"); ok {
			return h.addressUTXOs(ctx, c)
		}
		return h.svc.UTXOs(ctx)
	}))
	api.GET("/utxos/:address", h.wrap("address_utxos", h.addressUTXOs))
	api.GET("/nodetransactions", h.wrap("node_transactions", func(ctx context.Context, _ *gin.Context) (any, error) {
		return h.svc.SpecialTransactions(ctx)
	}))
	api.GET("/addresses/transactions", h.wrap("addresses_transactions", func(ctx context.Context, _ *gin.Context) (any, error) {
		return h.svc.Addresses(ctx)
	}))
	api.GET("/addresses", h.wrap("addresses", func(ctx context.Context, _ *gin.Context) (any, error) {
		return h.svc.AddressList(ctx)
	}))
	api.GET("/transactions/:address", h.wrap("address_transactions", h.addressTransactions))
	api.GET("/transactions", h.wrap("address_transactions", h.addressTransactions))
	api.GET("/scannedheight", h.wrap("scanned_height", func(ctx context.Context, _ *gin.Context) (any, error) {
		height, err := h.svc.ScannedHeight(ctx)
		if err != nil {
			return nil, err
		}
		return gin.H{"height": height}, nil
	}))
}

func (h *HTTPHandler) addressUTXOs(ctx context.Context, c *gin.Context) (any, error) {
	return h.svc.AddressUTXOs(ctx, addressParam(c))
}

func (h *HTTPHandler) addressTransactions(ctx context.Context, c *gin.Context) (any, error) {
	return h.svc.AddressTransactions(ctx, addressParam(c))
}

// wrap turns a read into a handler that always answers with an envelope.
func (h *HTTPHandler) wrap(route string, read func(ctx context.Context, c *gin.Context) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		result := statusSuccess
		defer func() {
			if h.metrics != nil {
				h.metrics.Observe(route, result, started)
			}
		}()

		data, err := read(c.Request.Context(), c)
		if err != nil {
			result = statusError
			h.logger.Warn("read failed", zap.String("route", route), zap.Error(err))
			sendError(c, err)
			return
		}
		sendData(c, data)
	}
}

func addressParam(c *gin.Context) string {
	if address := c.Param("address"); address != "" {
		return address
	}
	return c.Query("address")
}

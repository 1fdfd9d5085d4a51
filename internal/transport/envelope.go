package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorData struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// errorCode classifies err for the envelope body. The HTTP status stays 200.
func errorCode(err error) int {
	switch {
	case errors.Is(err, model.ErrMissingParameter):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, model.ErrStoreUnavailable), errors.Is(err, model.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func sendData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Status: statusSuccess, Data: data})
}

func sendError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, envelope{
		Status: statusError,
		Data: errorData{
			Code:    errorCode(err),
			Name:    model.ErrorName(err),
			Message: err.Error(),
		},
	})
}

package controllers

import (
	"calculator-service/internal/pkg/exceptions"
	"calculator-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
	}
	utils.BuildErrorResponse(log, w, err)
}

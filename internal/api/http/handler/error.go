package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
)

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidInput:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindInvalidOperation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a classified error with its mapped status. Anything
// unclassified is logged and rendered as a generic internal error so raw
// storage failures never leak.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Error("unclassified error",
			"error", err.Error())
		appErr = apperror.NewInternal()
	}

	writeJSON(w, log, statusForKind(appErr.Kind), Envelope{
		ResultCode: 1,
		Messages:   appErr.Messages,
		Data:       struct{}{},
	})
}

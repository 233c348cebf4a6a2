package handler

import (
	"net/http"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/pkg/response"
)

// writeError maps a usecase error onto an HTTP status by its error kind.
// Unknown errors never leak their message to the client.
func writeError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		response.Forbidden(w, err.Error())
	case apperr.KindNotFound:
		response.NotFound(w, err.Error())
	case apperr.KindAlreadyExists, apperr.KindInUse:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case apperr.KindInvalidReference, apperr.KindValidation:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/service"
	"github.com/studynotes/storefront.api/utils"
)

// writeSubmissionError maps a pipeline error onto a status and a message that
// is safe to show the buyer
func writeSubmissionError(w http.ResponseWriter, req *http.Request, err error, data log.Data) {
	log.ErrorR(req, err, data)

	switch service.ResponseTypeFor(err) {
	case service.InvalidData:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
	case service.TooLarge:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusRequestEntityTooLarge)
	case service.NotFound:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("product not found"), http.StatusNotFound)
	case service.NotConfigured:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusInternalServerError)
	case service.DeliveryFailed:
		var failure *service.DeliveryFailure
		errors.As(err, &failure)
		hint := ""
		if failure.UploadBlocked() {
			hint = service.UploadBlockedAdvice
		}
		utils.WriteJSONWithStatus(w, req, utils.NewHintedMessageResponse(failure.Message+failure.Hint, hint), http.StatusBadGateway)
	default:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("error processing submission"), http.StatusInternalServerError)
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/models"
	"github.com/studynotes/storefront.api/utils"
)

// HandleSubmitContactInquiry relays a contact form message to the site owner
func HandleSubmitContactInquiry(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		m := utils.NewMessageResponse("request body empty")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	var inquiry models.ContactInquiry
	if err := json.NewDecoder(req.Body).Decode(&inquiry); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		m := utils.NewMessageResponse("request body invalid")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Phone = strings.TrimSpace(inquiry.Phone)
	inquiry.Subject = strings.TrimSpace(inquiry.Subject)
	inquiry.Category = strings.TrimSpace(inquiry.Category)
	inquiry.Message = strings.TrimSpace(inquiry.Message)

	result, err := submissionService.SubmitContactInquiry(req.Context(), inquiry)
	if err != nil {
		writeSubmissionError(w, req, err, log.Data{"category": inquiry.Category})
		return
	}

	log.InfoR(req, "contact inquiry submitted", log.Data{"category": inquiry.Category})
	utils.WriteJSONWithStatus(w, req, result, http.StatusCreated)
}

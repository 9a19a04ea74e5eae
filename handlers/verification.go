package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/models"
	"github.com/studynotes/storefront.api/service"
	"github.com/studynotes/storefront.api/utils"
)

const (
	screenshotField = "screenshot"

	// multipart overhead allowed on top of the largest accepted screenshot
	formOverheadBytes int64 = 1 << 20
	formMemoryBytes   int64 = 1 << 20
)

// HandleSubmitVerification accepts the checkout verification form and relays
// it to the site owner
func HandleSubmitVerification(w http.ResponseWriter, req *http.Request) {

	log.InfoR(req, "start POST request for payment verification")

	req.Body = http.MaxBytesReader(w, req.Body, 2*service.MaxAttachmentBytes+formOverheadBytes)
	if err := req.ParseMultipartForm(formMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			log.ErrorR(req, fmt.Errorf("request body too large: [%v]", err))
			m := utils.NewMessageResponse(fmt.Sprintf("file too large, max %dMB allowed", service.MaxAttachmentBytes/(1024*1024)))
			utils.WriteJSONWithStatus(w, req, m, http.StatusRequestEntityTooLarge)
			return
		}
		log.ErrorR(req, fmt.Errorf("error parsing form: [%v]", err))
		m := utils.NewMessageResponse("error parsing form")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}
	defer req.MultipartForm.RemoveAll()

	buyer := models.BuyerInfo{
		FullName:      strings.TrimSpace(req.FormValue("name")),
		Email:         strings.TrimSpace(req.FormValue("email")),
		ContactNumber: strings.TrimSpace(req.FormValue("phone")),
	}

	evidence, err := readEvidence(req)
	if err != nil {
		log.ErrorR(req, err)
		m := utils.NewMessageResponse("error reading screenshot")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	productID := strings.TrimSpace(req.FormValue("product_id"))

	// configuration and buyer input are judged before the catalog is consulted
	if err := submissionService.CheckVerification(buyer, evidence); err != nil {
		writeSubmissionError(w, req, err, log.Data{"product_id": productID})
		return
	}

	// an empty id is left for the submission pipeline to reject
	var intent models.PurchaseIntent
	if productID != "" {
		intent, err = catalogService.PurchaseIntentFor(req.Context(), productID)
		if err != nil {
			writeSubmissionError(w, req, err, log.Data{"product_id": productID})
			return
		}
	}

	result, err := submissionService.SubmitVerification(req.Context(), buyer, evidence, intent)
	if err != nil {
		writeSubmissionError(w, req, err, log.Data{"product_id": intent.ProductID})
		return
	}

	log.InfoR(req, "payment verification submitted", log.Data{"reference": result.Reference, "attached": result.Attached})
	utils.WriteJSONWithStatus(w, req, result, http.StatusCreated)
}

// readEvidence collects whichever of the screenshot file and image URL were
// supplied. Oversized files are recorded by size only and never read.
func readEvidence(req *http.Request) (models.PaymentEvidence, error) {
	var evidence models.PaymentEvidence

	if imageURL := strings.TrimSpace(req.FormValue("image_url")); imageURL != "" {
		evidence.URL = &models.URLEvidence{URL: imageURL}
	}

	file, header, err := req.FormFile(screenshotField)
	if errors.Is(err, http.ErrMissingFile) {
		return evidence, nil
	}
	if err != nil {
		return evidence, fmt.Errorf("error reading file from request: [%w]", err)
	}
	defer closeFile(file)

	fileEvidence := &models.FileEvidence{
		Filename:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		SizeBytes: header.Size,
	}

	if header.Size <= service.MaxAttachmentBytes {
		buf := bytes.NewBuffer(nil)
		if _, err := io.Copy(buf, file); err != nil {
			return evidence, fmt.Errorf("error opening file: [%w]", err)
		}
		fileEvidence.Data = buf.Bytes()
		fileEvidence.MimeType = service.DetectMimeType(fileEvidence.Data, fileEvidence.MimeType)
	}

	evidence.File = fileEvidence
	return evidence, nil
}

func closeFile(file multipart.File) {
	if err := file.Close(); err != nil {
		log.Error(fmt.Errorf("error closing file: [%v]", err))
	}
}

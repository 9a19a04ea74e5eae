package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/studynotes/storefront.api/models"
	"github.com/studynotes/storefront.api/service"
	"github.com/studynotes/storefront.api/utils"
)

// HandleListProducts returns the catalog, optionally narrowed by the q and
// category query parameters
func HandleListProducts(w http.ResponseWriter, req *http.Request) {
	filter := models.ProductFilter{
		Query:    req.URL.Query().Get("q"),
		Category: req.URL.Query().Get("category"),
	}

	products, err := catalogService.ListProducts(req.Context(), filter)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing products: [%v]", err))
		m := utils.NewMessageResponse("error listing products")
		utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, products, http.StatusOK)
}

// HandleGetProduct returns a single product
func HandleGetProduct(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["product_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("product id not supplied"))
		m := utils.NewMessageResponse("product id not supplied")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	product, err := catalogService.GetProduct(req.Context(), id)
	if errors.Is(err, service.ErrProductNotFound) {
		log.InfoR(req, "product not found", log.Data{"product_id": id})
		m := utils.NewMessageResponse("product not found")
		utils.WriteJSONWithStatus(w, req, m, http.StatusNotFound)
		return
	}
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting product: [%v]", err), log.Data{"product_id": id})
		m := utils.NewMessageResponse("error getting product")
		utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, product, http.StatusOK)
}

// HandleListCategories returns the category filter options
func HandleListCategories(w http.ResponseWriter, req *http.Request) {
	categories, err := catalogService.ListCategories(req.Context())
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing categories: [%v]", err))
		m := utils.NewMessageResponse("error listing categories")
		utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, categories, http.StatusOK)
}

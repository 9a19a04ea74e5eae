package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/studynotes/storefront.api/config"
	"github.com/studynotes/storefront.api/dao"
	"github.com/studynotes/storefront.api/service"
)

var catalogService *service.CatalogService
var submissionService *service.SubmissionService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	catalogService = &service.CatalogService{
		DAO: newCatalogDAO(cfg),
	}

	timeout := time.Duration(cfg.RelayTimeoutSeconds) * time.Second
	submissionService = service.NewSubmissionService(
		cfg,
		service.NewWeb3FormsClient(cfg.RelayURL, timeout),
		service.NewHTTPImageFetcher(timeout),
	)

	if cfg.RelayAccessKey == "" {
		log.Info("WEB3FORMS_ACCESS_KEY is not set, submissions will be rejected")
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	productsRouter := mainRouter.PathPrefix("/products").Subrouter()
	productsRouter.HandleFunc("", HandleListProducts).Methods("GET").Name("list-products")
	productsRouter.HandleFunc("/{product_id}", HandleGetProduct).Methods("GET").Name("get-product")

	categoriesRouter := mainRouter.PathPrefix("/categories").Subrouter()
	categoriesRouter.HandleFunc("", HandleListCategories).Methods("GET").Name("list-categories")

	// submissions relay to Web3Forms, the only routes with outbound side effects
	verificationRouter := mainRouter.PathPrefix("/checkout/verifications").Subrouter()
	verificationRouter.HandleFunc("", HandleSubmitVerification).Methods("POST").Name("submit-verification")

	contactRouter := mainRouter.PathPrefix("/contact").Subrouter()
	contactRouter.HandleFunc("", HandleSubmitContactInquiry).Methods("POST").Name("submit-contact-inquiry")

	// Set middleware for subrouters
	productsRouter.Use(log.Handler)
	categoriesRouter.Use(log.Handler)
	verificationRouter.Use(log.Handler)
	contactRouter.Use(log.Handler)
}

// newCatalogDAO uses Mongo when a URL is configured and the built-in catalog
// otherwise
func newCatalogDAO(cfg config.Config) dao.DAO {
	if cfg.MongoDBURL == "" {
		log.Info("MONGODB_URL is not set, serving the static catalog")
		return dao.NewStaticCatalog()
	}

	m, err := dao.NewMongoService(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	return m
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

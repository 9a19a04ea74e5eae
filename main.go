package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/studynotes/storefront.api/config"
	"github.com/studynotes/storefront.api/handlers"
)

func main() {
	log.Namespace = "storefront.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	log.Info("Starting storefront.api service", log.Data{"bind_addr": cfg.BindAddr})
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting storefront.api service")
}

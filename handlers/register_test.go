package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/studynotes/storefront.api/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		Register(router, *cfg)
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("list-products"), ShouldNotBeNil)
		So(router.GetRoute("get-product"), ShouldNotBeNil)
		So(router.GetRoute("list-categories"), ShouldNotBeNil)
		So(router.GetRoute("submit-verification"), ShouldNotBeNil)
		So(router.GetRoute("submit-contact-inquiry"), ShouldNotBeNil)
	})

	Convey("Healthcheck", t, func() {
		router := mux.NewRouter()
		Register(router, *config.DefaultConfig())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/healthcheck", nil))
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Product route resolves the id", t, func() {
		router := mux.NewRouter()
		Register(router, *config.DefaultConfig())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/products/3", nil))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "Business Management Study Guide")
	})
}

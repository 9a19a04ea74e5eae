package dao

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitStaticCatalog(t *testing.T) {
	ctx := context.Background()

	Convey("Lists the default catalog", t, func() {
		catalog := NewStaticCatalog()
		products, err := catalog.ListProducts(ctx)

		So(err, ShouldBeNil)
		So(len(products), ShouldEqual, 8)
		for i, p := range products {
			So(p.Position, ShouldEqual, i+1)
			So(p.Price, ShouldNotBeEmpty)
		}
	})

	Convey("Gets a product by id", t, func() {
		product, err := NewStaticCatalog().GetProduct(ctx, "8")

		So(err, ShouldBeNil)
		So(product.Title, ShouldEqual, "Machine Learning Fundamentals")
		So(product.Price, ShouldEqual, "699")
	})

	Convey("Unknown id returns nil", t, func() {
		product, err := NewStaticCatalog().GetProduct(ctx, "n99")

		So(err, ShouldBeNil)
		So(product, ShouldBeNil)
	})

	Convey("Callers cannot modify the catalog", t, func() {
		catalog := NewStaticCatalog()
		products, _ := catalog.ListProducts(ctx)
		products[0].Price = "0"

		product, _ := catalog.GetProduct(ctx, "1")
		So(product.Price, ShouldEqual, "299")
	})
}

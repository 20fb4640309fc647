package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/provider"
)

func newProductsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.New([]models.Product{
		{ID: "1", Name: "iPhone 13 Pro", Brand: "Apple", PriceAmount: models.NewMoneyFromInt(699), Condition: constants.ConditionExcellent, Category: "iPhone", InStock: true},
		{ID: "2", Name: "Galaxy S22 Ultra", Brand: "Samsung", PriceAmount: models.NewMoneyFromInt(599), Condition: constants.ConditionVeryGood, Category: "Samsung", InStock: true},
		{ID: "3", Name: "iPhone 12", Brand: "Apple", PriceAmount: models.NewMoneyFromInt(379), Condition: constants.ConditionFair, Category: "iPhone", InStock: false},
	})
	h := New(&provider.Container{Catalog: cat})

	r := gin.New()
	r.GET("/products", h.GetProducts)
	r.GET("/products/facets", h.GetFacets)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/products/:id/related", h.GetRelatedProducts)
	return r
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, body
}

func TestGetProductsFiltered(t *testing.T) {
	r := newProductsRouter()
	w, body := doRequest(t, r, "/products?brands=apple&sort=price-asc")

	if w.Code != http.StatusOK || body.StatusCode != 0 {
		t.Fatalf("unexpected status: http=%d code=%d", w.Code, body.StatusCode)
	}
	var list []models.Product
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
	if list[0].ID != "3" || list[1].ID != "1" {
		t.Fatalf("expected price-asc order 3,1 got %s,%s", list[0].ID, list[1].ID)
	}
}

func TestGetProductsBadRatings(t *testing.T) {
	r := newProductsRouter()
	w, body := doRequest(t, r, "/products?ratings=abc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 envelope, got %d", w.Code)
	}
	if body.StatusCode != 400 {
		t.Fatalf("expected code 400, got %d", body.StatusCode)
	}
}

func TestGetProductDetail(t *testing.T) {
	r := newProductsRouter()
	_, body := doRequest(t, r, "/products/2")
	if body.StatusCode != 0 {
		t.Fatalf("expected success, got %d (%s)", body.StatusCode, body.Msg)
	}
	var product models.Product
	if err := json.Unmarshal(body.Data, &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if product.Name != "Galaxy S22 Ultra" {
		t.Fatalf("unexpected product: %s", product.Name)
	}

	_, body = doRequest(t, r, "/products/missing")
	if body.StatusCode != 404 {
		t.Fatalf("expected code 404, got %d", body.StatusCode)
	}
}

func TestGetRelatedProducts(t *testing.T) {
	r := newProductsRouter()
	_, body := doRequest(t, r, "/products/1/related")
	if body.StatusCode != 0 {
		t.Fatalf("expected success, got %d", body.StatusCode)
	}
	var data struct {
		Items []models.Product `json:"items"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode related: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0].ID != "3" {
		t.Fatalf("expected related item 3, got %+v", data.Items)
	}
}

func TestGetFacets(t *testing.T) {
	r := newProductsRouter()
	_, body := doRequest(t, r, "/products/facets")
	if body.StatusCode != 0 {
		t.Fatalf("expected success, got %d", body.StatusCode)
	}
	var facets catalog.Facets
	if err := json.Unmarshal(body.Data, &facets); err != nil {
		t.Fatalf("decode facets: %v", err)
	}
	if facets.InStock != 2 || facets.OutOfStock != 1 {
		t.Fatalf("unexpected stock facets: %d/%d", facets.InStock, facets.OutOfStock)
	}
}

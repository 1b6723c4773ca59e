package products

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(p Product) any { return toProductResponse(p) })

	r.Route("/products", func(pr chi.Router) {
		pr.Post("/", createProductHandler(h))
		pr.Get("/", listProductsHandler(h))

		pr.Get("/{id}", getProductHandler(h))
		pr.Put("/{id}", updateProductHandler(h))
		pr.Patch("/{id}", updateProductHandler(h))
		pr.Delete("/{id}", deleteProductHandler(h))
	})
}

type productRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price string `json:"price" example:"10400.50"`
}

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// @Summary Crear producto
// @Description price debe ser positivo y solo dígitos con punto decimal opcional (sin signo, sin separador de miles).
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body productRequest true "Datos del producto"
// @Success 201 {object} productResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /products [post]
func createProductHandler(h records.Handlers[Product]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar productos
// @Tags products
// @Produce json
// @Success 200 {array} productResponse
// @Router /products [get]
func listProductsHandler(h records.Handlers[Product]) http.HandlerFunc {
	return h.List
}

// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [get]
func getProductHandler(h records.Handlers[Product]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar producto
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID del producto"
// @Param payload body productRequest true "Campos a modificar"
// @Success 200 {object} productResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /products/{id} [put]
// @Router /products/{id} [patch]
func updateProductHandler(h records.Handlers[Product]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar producto
// @Tags products
// @Param id path string true "ID del producto"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [delete]
func deleteProductHandler(h records.Handlers[Product]) http.HandlerFunc {
	return h.Delete
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     p.Price.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

package providers

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(p Provider) any { return toProviderResponse(p) })

	r.Route("/providers", func(pr chi.Router) {
		pr.Post("/", createProviderHandler(h))
		pr.Get("/", listProvidersHandler(h))

		pr.Get("/{id}", getProviderHandler(h))
		pr.Put("/{id}", updateProviderHandler(h))
		pr.Patch("/{id}", updateProviderHandler(h))
		pr.Delete("/{id}", deleteProviderHandler(h))
	})
}

type providerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

type providerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Direccion string    `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// @Summary Crear proveedor
// @Tags providers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body providerRequest true "Datos del proveedor"
// @Success 201 {object} providerResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /providers [post]
func createProviderHandler(h records.Handlers[Provider]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar proveedores
// @Tags providers
// @Produce json
// @Success 200 {array} providerResponse
// @Router /providers [get]
func listProvidersHandler(h records.Handlers[Provider]) http.HandlerFunc {
	return h.List
}

// @Summary Obtener proveedor
// @Tags providers
// @Produce json
// @Param id path string true "ID del proveedor"
// @Success 200 {object} providerResponse
// @Failure 404 {object} apierror.APIError
// @Router /providers/{id} [get]
func getProviderHandler(h records.Handlers[Provider]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar proveedor
// @Tags providers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID del proveedor"
// @Param payload body providerRequest true "Campos a modificar"
// @Success 200 {object} providerResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /providers/{id} [put]
// @Router /providers/{id} [patch]
func updateProviderHandler(h records.Handlers[Provider]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar proveedor
// @Tags providers
// @Param id path string true "ID del proveedor"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /providers/{id} [delete]
func deleteProviderHandler(h records.Handlers[Provider]) http.HandlerFunc {
	return h.Delete
}

func toProviderResponse(p Provider) providerResponse {
	return providerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Direccion: p.Direccion,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

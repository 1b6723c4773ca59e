package clients

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(c Client) any { return toClientResponse(c) })

	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", createClientHandler(h))
		cr.Get("/", listClientsHandler(h))
		cr.Get("/cities", listCitiesHandler())

		cr.Get("/{id}", getClientHandler(h))
		cr.Put("/{id}", updateClientHandler(h))
		cr.Patch("/{id}", updateClientHandler(h))
		cr.Delete("/{id}", deleteClientHandler(h))
	})
}

// clientRequest documenta el cuerpo aceptado (JSON o form-urlencoded).
type clientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// @Summary Crear cliente
// @Description Valida todos los campos y crea el cliente. Si algún campo es inválido no se guarda nada y se devuelven los errores por campo junto con lo enviado.
// @Tags clients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body clientRequest true "Datos del cliente"
// @Success 201 {object} clientResponse
// @Failure 400 {object} apierror.APIError "cuerpo inválido"
// @Failure 422 {object} apierror.ValidationError "errores por campo"
// @Router /clients [post]
func createClientHandler(h records.Handlers[Client]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Success 200 {array} clientResponse
// @Router /clients [get]
func listClientsHandler(h records.Handlers[Client]) http.HandlerFunc {
	return h.List
}

// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} clientResponse
// @Failure 404 {object} apierror.APIError
// @Router /clients/{id} [get]
func getClientHandler(h records.Handlers[Client]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar cliente
// @Description Los campos no enviados conservan su valor; el registro resultante se valida completo. Ante cualquier error el cliente queda sin cambios.
// @Tags clients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID del cliente"
// @Param payload body clientRequest true "Campos a modificar"
// @Success 200 {object} clientResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /clients/{id} [put]
// @Router /clients/{id} [patch]
func updateClientHandler(h records.Handlers[Client]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar cliente
// @Tags clients
// @Param id path string true "ID del cliente"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /clients/{id} [delete]
func deleteClientHandler(h records.Handlers[Client]) http.HandlerFunc {
	return h.Delete
}

// @Summary Ciudades disponibles
// @Tags clients
// @Produce json
// @Success 200 {array} string
// @Router /clients/cities [get]
func listCitiesHandler() http.HandlerFunc {
	return records.Choices(Cities)
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		City:      c.City,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

package vets

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(v Vet) any { return toVetResponse(v) })

	r.Route("/vets", func(vr chi.Router) {
		vr.Post("/", createVetHandler(h))
		vr.Get("/", listVetsHandler(h))
		vr.Get("/specialities", listSpecialitiesHandler())

		vr.Get("/{id}", getVetHandler(h))
		vr.Put("/{id}", updateVetHandler(h))
		vr.Patch("/{id}", updateVetHandler(h))
		vr.Delete("/{id}", deleteVetHandler(h))
	})
}

type vetRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Speciality string `json:"speciality"`
}

type vetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	FormattedPhone string    `json:"formatted_phone"`
	Speciality     string    `json:"speciality"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// @Summary Crear veterinario
// @Description El teléfono acepta separadores "-" y "_" y se guarda sin ellos.
// @Tags vets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 201 {object} vetResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /vets [post]
func createVetHandler(h records.Handlers[Vet]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar veterinarios
// @Tags vets
// @Produce json
// @Success 200 {array} vetResponse
// @Router /vets [get]
func listVetsHandler(h records.Handlers[Vet]) http.HandlerFunc {
	return h.List
}

// @Summary Obtener veterinario
// @Tags vets
// @Produce json
// @Param id path string true "ID del veterinario"
// @Success 200 {object} vetResponse
// @Failure 404 {object} apierror.APIError
// @Router /vets/{id} [get]
func getVetHandler(h records.Handlers[Vet]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar veterinario
// @Tags vets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID del veterinario"
// @Param payload body vetRequest true "Campos a modificar"
// @Success 200 {object} vetResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /vets/{id} [put]
// @Router /vets/{id} [patch]
func updateVetHandler(h records.Handlers[Vet]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar veterinario
// @Tags vets
// @Param id path string true "ID del veterinario"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /vets/{id} [delete]
func deleteVetHandler(h records.Handlers[Vet]) http.HandlerFunc {
	return h.Delete
}

// @Summary Especialidades disponibles
// @Tags vets
// @Produce json
// @Success 200 {array} string
// @Router /vets/specialities [get]
func listSpecialitiesHandler() http.HandlerFunc {
	return records.Choices(Specialities)
}

func toVetResponse(v Vet) vetResponse {
	return vetResponse{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		FormattedPhone: v.FormattedPhone(),
		Speciality:     v.Speciality,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

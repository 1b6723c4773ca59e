package pets

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(p Pet) any { return toPetResponse(p) })

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(h))
		pr.Get("/", listPetsHandler(h))
		pr.Get("/breeds", listBreedsHandler())

		pr.Get("/{id}", getPetHandler(h))
		pr.Put("/{id}", updatePetHandler(h))
		pr.Patch("/{id}", updatePetHandler(h))
		pr.Delete("/{id}", deletePetHandler(h))
	})
}

type petRequest struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Birthday string `json:"birthday" example:"21/03/2020"` // dd/mm/yyyy
	Weight   string `json:"weight" example:"10.50"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Birthday  string    `json:"birthday"` // dd/mm/yyyy
	Weight    string    `json:"weight"`   // siempre con dos decimales
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// @Summary Crear mascota
// @Description birthday en formato dd/mm/yyyy; weight no negativo y con hasta dos decimales. Se aceptan números JSON o texto.
// @Tags pets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /pets [post]
func createPetHandler(h records.Handlers[Pet]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(h records.Handlers[Pet]) http.HandlerFunc {
	return h.List
}

// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} apierror.APIError
// @Router /pets/{id} [get]
func getPetHandler(h records.Handlers[Pet]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar mascota
// @Description Lo no enviado se conserva. Se re-valida la mascota completa antes de guardar.
// @Tags pets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID de la mascota"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /pets/{id} [put]
// @Router /pets/{id} [patch]
func updatePetHandler(h records.Handlers[Pet]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar mascota
// @Tags pets
// @Param id path string true "ID de la mascota"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /pets/{id} [delete]
func deletePetHandler(h records.Handlers[Pet]) http.HandlerFunc {
	return h.Delete
}

// @Summary Razas disponibles
// @Tags pets
// @Produce json
// @Success 200 {array} string
// @Router /pets/breeds [get]
func listBreedsHandler() http.HandlerFunc {
	return records.Choices(Breeds)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Birthday:  validation.FormatDate(p.Birthday),
		Weight:    p.Weight.StringFixed(2),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

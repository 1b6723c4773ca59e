package medicines

import (
	"net/http"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	h := records.NewHandlers(svc, func(m Medicine) any { return toMedicineResponse(m) })

	r.Route("/medicines", func(mr chi.Router) {
		mr.Post("/", createMedicineHandler(h))
		mr.Get("/", listMedicinesHandler(h))

		mr.Get("/{id}", getMedicineHandler(h))
		mr.Put("/{id}", updateMedicineHandler(h))
		mr.Patch("/{id}", updateMedicineHandler(h))
		mr.Delete("/{id}", deleteMedicineHandler(h))
	})
}

type medicineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dose        string `json:"dose" example:"5"`
}

type medicineResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Dose        int       `json:"dose"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// @Summary Crear medicamento
// @Description dose debe ser un entero entre 1 y 10.
// @Tags medicines
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body medicineRequest true "Datos del medicamento"
// @Success 201 {object} medicineResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /medicines [post]
func createMedicineHandler(h records.Handlers[Medicine]) http.HandlerFunc {
	return h.Create
}

// @Summary Listar medicamentos
// @Tags medicines
// @Produce json
// @Success 200 {array} medicineResponse
// @Router /medicines [get]
func listMedicinesHandler(h records.Handlers[Medicine]) http.HandlerFunc {
	return h.List
}

// @Summary Obtener medicamento
// @Tags medicines
// @Produce json
// @Param id path string true "ID del medicamento"
// @Success 200 {object} medicineResponse
// @Failure 404 {object} apierror.APIError
// @Router /medicines/{id} [get]
func getMedicineHandler(h records.Handlers[Medicine]) http.HandlerFunc {
	return h.Get
}

// @Summary Actualizar medicamento
// @Tags medicines
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "ID del medicamento"
// @Param payload body medicineRequest true "Campos a modificar"
// @Success 200 {object} medicineResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /medicines/{id} [put]
// @Router /medicines/{id} [patch]
func updateMedicineHandler(h records.Handlers[Medicine]) http.HandlerFunc {
	return h.Update
}

// @Summary Eliminar medicamento
// @Tags medicines
// @Param id path string true "ID del medicamento"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /medicines/{id} [delete]
func deleteMedicineHandler(h records.Handlers[Medicine]) http.HandlerFunc {
	return h.Delete
}

func toMedicineResponse(m Medicine) medicineResponse {
	return medicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Dose:        m.Dose,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

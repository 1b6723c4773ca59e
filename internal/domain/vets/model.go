package vets

import "vetsoft/internal/domain/records"

// Vet es un veterinario de la clínica.
type Vet struct {
	records.Base

	Name       string
	Email      string
	Phone      string // 10 dígitos, sin separadores
	Speciality string
}

// FormattedPhone agrupa el teléfono 3-3-4 (221-555-2324). Si el largo no es
// el esperado se devuelve tal cual.
func (v Vet) FormattedPhone() string {
	if len(v.Phone) != 10 {
		return v.Phone
	}
	return v.Phone[:3] + "-" + v.Phone[3:6] + "-" + v.Phone[6:]
}

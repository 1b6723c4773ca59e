package pets

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"

	"github.com/shopspring/decimal"
)

// Breeds son las razas de perro que se pueden registrar.
var Breeds = validation.NewChoiceSet(
	"Golden Retriever",
	"Labrador",
	"Pastor Aleman",
	"Beagle",
	"Boxer",
	"Bulldog",
	"Caniche",
	"Mestizo",
)

var Rules = validation.Ruleset{
	{
		Field: "name",
		Checks: []validation.Check{
			{Tag: "required", Message: "El nombre es requerido."},
		},
	},
	{
		Field: "breed",
		Checks: []validation.Check{
			{Tag: "required", Message: "La raza es requerida."},
			Breeds.Check("La raza no es válida."),
		},
	},
	{
		Field: "birthday",
		Checks: []validation.Check{
			{Tag: "required", Message: "La fecha de nacimiento es requerida."},
			{Tag: "date", Message: "Por favor ingrese una fecha de nacimiento válida, formato: dd/mm/yyyy."},
		},
	},
	{
		Field: "weight",
		Checks: []validation.Check{
			{Tag: "required", Message: "El peso es requerido."},
			{Tag: "decimal", Message: "El peso debe ser un número positivo con hasta dos decimales."},
			{Tag: "decmin=0", Message: "El peso no puede ser menor a 0."},
			{Tag: "decplaces=2", Message: "El peso debe tener hasta dos decimales."},
		},
	},
}

var Schema = records.Schema[Pet]{
	Name:  "pets",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Pet {
		// los campos ya pasaron por Rules
		birthday, _ := validation.ParseDate(f["birthday"])
		weight, _ := decimal.NewFromString(f["weight"])

		return Pet{
			Base:     b,
			Name:     f["name"],
			Breed:    f["breed"],
			Birthday: birthday,
			Weight:   weight,
		}
	},
	Fields: func(p Pet) validation.Fields {
		return validation.Fields{
			"name":     p.Name,
			"breed":    p.Breed,
			"birthday": validation.FormatDate(p.Birthday),
			"weight":   p.Weight.StringFixed(2),
		}
	},
}

package medicines

import (
	"strconv"

	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"
)

const (
	MinDose = 1
	MaxDose = 10
)

var Rules = validation.Ruleset{
	{
		Field: "name",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un nombre"},
		},
	},
	{
		Field: "description",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese una descripción"},
		},
	},
	{
		Field: "dose",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese una dosis"},
			{Tag: "integer", Message: "Por favor ingrese una dosis válida"},
			{
				Tag:     "intmin=" + strconv.Itoa(MinDose) + ",intmax=" + strconv.Itoa(MaxDose),
				Message: "Por favor ingrese una dosis entre 1 y 10",
			},
		},
	},
}

var Schema = records.Schema[Medicine]{
	Name:  "medicines",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Medicine {
		dose, _ := strconv.Atoi(f["dose"])
		return Medicine{
			Base:        b,
			Name:        f["name"],
			Description: f["description"],
			Dose:        dose,
		}
	},
	Fields: func(m Medicine) validation.Fields {
		return validation.Fields{
			"name":        m.Name,
			"description": m.Description,
			"dose":        strconv.Itoa(m.Dose),
		}
	},
}

package vets

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"
)

var Specialities = validation.NewChoiceSet(
	"General",
	"Cardiologo",
	"Dermatologo",
	"Oftalmologo",
	"Traumatologo",
)

var Rules = validation.Ruleset{
	{
		Field: "name",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un nombre"},
		},
	},
	{
		Field: "email",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un email"},
			{Tag: "contains=@", Message: "Por favor ingrese un email valido"},
		},
	},
	{
		Field:     "phone",
		Normalize: validation.StripPhone,
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un teléfono"},
			{Tag: "number,len=10", Message: "Por favor ingrese un teléfono válido"},
		},
	},
	{
		Field: "speciality",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese una especialidad"},
			Specialities.Check("Especialidad no válida"),
		},
	},
}

var Schema = records.Schema[Vet]{
	Name:  "vets",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Vet {
		return Vet{
			Base:       b,
			Name:       f["name"],
			Email:      f["email"],
			Phone:      f["phone"],
			Speciality: f["speciality"],
		}
	},
	Fields: func(v Vet) validation.Fields {
		return validation.Fields{
			"name":       v.Name,
			"email":      v.Email,
			"phone":      v.Phone,
			"speciality": v.Speciality,
		}
	},
}

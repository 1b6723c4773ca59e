package providers

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"
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
		Field: "direccion",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese una direccion"},
		},
	},
}

var Schema = records.Schema[Provider]{
	Name:  "providers",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Provider {
		return Provider{
			Base:      b,
			Name:      f["name"],
			Email:     f["email"],
			Direccion: f["direccion"],
		}
	},
	Fields: func(p Provider) validation.Fields {
		return validation.Fields{
			"name":      p.Name,
			"email":     p.Email,
			"direccion": p.Direccion,
		}
	},
}

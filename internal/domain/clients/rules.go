package clients

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"
)

// EmailDomain es el sufijo obligatorio del email de un cliente.
const EmailDomain = "@vetsoft.com"

// Cities son las ciudades donde atiende la clínica.
var Cities = validation.NewChoiceSet("La Plata", "Berisso", "Ensenada")

var Rules = validation.Ruleset{
	{
		Field: "name",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un nombre"},
			{Tag: "alphaspace", Message: "El nombre solo debe contener letras y espacios"},
		},
	},
	{
		Field:     "phone",
		Normalize: validation.StripPhone,
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un teléfono"},
			{Tag: "number,startswith=54,min=10", Message: "Por favor ingrese un teléfono válido"},
		},
	},
	{
		Field: "email",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese un email"},
			{Tag: "contains=@", Message: "Por favor ingrese un email valido"},
			{Tag: "endswith=" + EmailDomain, Message: "El email debe terminar con " + EmailDomain},
		},
	},
	{
		Field: "city",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese una ciudad"},
			Cities.Check("Ciudad no válida"),
		},
	},
}

var Schema = records.Schema[Client]{
	Name:  "clients",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Client {
		return Client{
			Base:  b,
			Name:  f["name"],
			Phone: f["phone"],
			Email: f["email"],
			City:  f["city"],
		}
	},
	Fields: func(c Client) validation.Fields {
		return validation.Fields{
			"name":  c.Name,
			"phone": c.Phone,
			"email": c.Email,
			"city":  c.City,
		}
	},
}

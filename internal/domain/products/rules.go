package products

import (
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"

	"github.com/shopspring/decimal"
)

var Rules = validation.Ruleset{
	{
		Field: "name",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese el nombre del producto"},
		},
	},
	{
		Field: "type",
		Checks: []validation.Check{
			{Tag: "required", Message: "Por favor ingrese el tipo de producto"},
		},
	},
	{
		// pricefmt descarta signos, notación científica y separadores de miles
		Field: "price",
		Checks: []validation.Check{
			{Tag: "required,pricefmt,decimal,decgt=0", Message: "Por favor ingrese un precio válido"},
		},
	},
}

var Schema = records.Schema[Product]{
	Name:  "products",
	Rules: Rules,
	Build: func(b records.Base, f validation.Fields) Product {
		price, _ := decimal.NewFromString(f["price"])
		return Product{
			Base:  b,
			Name:  f["name"],
			Type:  f["type"],
			Price: price,
		}
	},
	Fields: func(p Product) validation.Fields {
		return validation.Fields{
			"name":  p.Name,
			"type":  p.Type,
			"price": p.Price.String(),
		}
	},
}

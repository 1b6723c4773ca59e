// Package validation implementa un motor de reglas declarativo para formularios:
// cada entidad describe sus campos como una lista de reglas y el motor devuelve
// un mapa campo -> mensaje con el primer error de cada campo.
package validation

import (
	"sort"
	"strings"
)

// Fields es la entrada cruda de un formulario (todo texto).
type Fields map[string]string

// Get devuelve el valor de key y si estaba presente.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// Merge devuelve una copia de f con las claves de override encima.
// Una clave presente con valor vacío también pisa.
func (f Fields) Merge(override Fields) Fields {
	out := make(Fields, len(f)+len(override))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Errors es el resultado de validar: campo -> mensaje legible.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Empty es true si no hubo errores.
func (e Errors) Empty() bool { return len(e) == 0 }

// Check es una regla sobre un campo. Se usa Tag (tag de validator/v10) o Func.
type Check struct {
	Tag     string
	Func    func(string) bool
	Message string
}

// Rule agrupa los checks de un campo. Se evalúan en orden y el primero que falla
// define el mensaje del campo.
type Rule struct {
	Field     string
	Normalize func(string) string
	Checks    []Check
}

// Ruleset es la descripción completa de un formulario.
type Ruleset []Rule

// Validate aplica todas las reglas. Nunca corta entre campos.
func (rs Ruleset) Validate(in Fields) Errors {
	errs := Errors{}
	for _, rule := range rs {
		value := rule.normalize(in[rule.Field])
		for _, c := range rule.Checks {
			if !c.passes(value) {
				errs[rule.Field] = c.Message
				break
			}
		}
	}
	return errs
}

// Normalize devuelve una copia con los campos de las reglas normalizados.
// Las claves sin regla se copian tal cual.
func (rs Ruleset) Normalize(in Fields) Fields {
	out := make(Fields, len(in))
	for k, v := range in {
		out[k] = v
	}
	for _, rule := range rs {
		if v, ok := in[rule.Field]; ok {
			out[rule.Field] = rule.normalize(v)
		}
	}
	return out
}

// FieldNames lista los campos en el orden de declaración.
func (rs Ruleset) FieldNames() []string {
	out := make([]string, 0, len(rs))
	for _, rule := range rs {
		out = append(out, rule.Field)
	}
	return out
}

func (r Rule) normalize(v string) string {
	if r.Normalize != nil {
		return r.Normalize(v)
	}
	return strings.TrimSpace(v)
}

func (c Check) passes(v string) bool {
	if c.Func != nil {
		return c.Func(v)
	}
	return engine.Var(v, c.Tag) == nil
}

// StripPhone quita espacios de borde y los separadores "-" y "_".
func StripPhone(v string) string {
	v = strings.TrimSpace(v)
	return strings.NewReplacer("-", "", "_", "").Replace(v)
}

// Result es Valid(record) o Invalid(errors).
type Result[T any] struct {
	Record T
	Errors Errors
}

func Valid[T any](record T) Result[T] {
	return Result[T]{Record: record}
}

func Invalid[T any](errs Errors) Result[T] {
	return Result[T]{Errors: errs}
}

// OK es true para Valid.
func (r Result[T]) OK() bool { return len(r.Errors) == 0 }

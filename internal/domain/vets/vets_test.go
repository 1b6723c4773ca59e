package vets_test

import (
	"context"
	"testing"

	"vetsoft/internal/adapters/storage/memory"
	"vetsoft/internal/domain/vets"
	"vetsoft/internal/platform/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVet() validation.Fields {
	return validation.Fields{
		"name":       "Mariano Navone",
		"email":      "mariano@vet.com",
		"phone":      "221-555-2324",
		"speciality": "Cardiologo",
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	assert.Equal(t, validation.Errors{
		"name":       "Por favor ingrese un nombre",
		"email":      "Por favor ingrese un email",
		"phone":      "Por favor ingrese un teléfono",
		"speciality": "Por favor ingrese una especialidad",
	}, vets.Rules.Validate(validation.Fields{}))
}

func TestValidate_Phone(t *testing.T) {
	cases := map[string]bool{
		"2215552324":   true,
		"221-555-2324": true,
		"221_555_2324": true,
		"221555232":    false,
		"22155523245":  false,
		"221-555-23ab": false,
	}

	for phone, ok := range cases {
		in := validVet()
		in["phone"] = phone
		errs := vets.Rules.Validate(in)
		if ok {
			assert.NotContains(t, errs, "phone", phone)
			continue
		}
		assert.Equal(t, "Por favor ingrese un teléfono válido", errs["phone"], phone)
	}
}

func TestValidate_EmailAndSpeciality(t *testing.T) {
	in := validVet()
	in["email"] = "mariano.vet.com"
	in["speciality"] = "Odontologo"

	errs := vets.Rules.Validate(in)
	assert.Equal(t, "Por favor ingrese un email valido", errs["email"])
	assert.Equal(t, "Especialidad no válida", errs["speciality"])
	assert.Len(t, errs, 2)
}

func TestCreateAndFormattedPhone(t *testing.T) {
	svc := vets.NewService(memory.NewVetRepo(), nil)

	res, err := svc.Create(context.Background(), validVet())
	require.NoError(t, err)
	require.True(t, res.OK())

	assert.Equal(t, "2215552324", res.Record.Phone)
	assert.Equal(t, "221-555-2324", res.Record.FormattedPhone())
}

func TestUpdate_InvalidKeepsVet(t *testing.T) {
	svc := vets.NewService(memory.NewVetRepo(), nil)

	created, err := svc.Create(context.Background(), validVet())
	require.NoError(t, err)

	res, err := svc.Update(context.Background(), created.Record.ID, validation.Fields{
		"name":       "Otro",
		"speciality": "",
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, validation.Errors{"speciality": "Por favor ingrese una especialidad"}, res.Errors)

	stored, err := svc.GetByID(context.Background(), created.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mariano Navone", stored.Name)
}

func TestSpecialities(t *testing.T) {
	values := vets.Specialities.Values()
	assert.Contains(t, values, "General")
	assert.Len(t, values, 5)
}

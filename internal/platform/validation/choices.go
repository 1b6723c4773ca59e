package validation

import "github.com/samber/lo"

// ChoiceSet es una lista fija de valores permitidos. Se construye una vez al
// iniciar y no se modifica.
type ChoiceSet struct {
	values []string
}

func NewChoiceSet(values ...string) ChoiceSet {
	return ChoiceSet{values: lo.Uniq(values)}
}

// Contains indica si v es una opción válida (comparación exacta).
func (c ChoiceSet) Contains(v string) bool {
	return lo.Contains(c.values, v)
}

// Values devuelve una copia ordenada como se declaró.
func (c ChoiceSet) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Check arma el check de pertenencia con el mensaje dado.
func (c ChoiceSet) Check(message string) Check {
	return Check{Func: c.Contains, Message: message}
}

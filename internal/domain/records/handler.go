package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"vetsoft/internal/platform/apierror"
	"vetsoft/internal/platform/validation"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// IDParam es el nombre del parámetro de ruta con el identificador.
const IDParam = "id"

// maxBodyBytes limita el cuerpo de create/update, formulario o JSON.
const maxBodyBytes = 1 << 20

var (
	errInvalidBody  = errors.New("invalid body")
	errBodyTooLarge = errors.New("body too large")
)

// Handlers arma los http.HandlerFunc CRUD de una entidad. Cada módulo los
// envuelve en sus propios handlers documentados.
type Handlers[T Entity] struct {
	svc        *Service[T]
	toResponse func(T) any
}

func NewHandlers[T Entity](svc *Service[T], toResponse func(T) any) Handlers[T] {
	return Handlers[T]{svc: svc, toResponse: toResponse}
}

func (h Handlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	in, err := DecodeFields(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	if !res.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, apierror.NewValidation(res.Errors, in))
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(res.Record))
}

func (h Handlers[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := lo.Map(items, func(v T, _ int) any { return h.toResponse(v) })
	writeJSON(w, http.StatusOK, out)
}

func (h Handlers[T]) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetByID(r.Context(), chi.URLParam(r, IDParam))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(v))
}

// Update sirve para PUT y PATCH: en ambos casos lo que no llega conserva
// el valor guardado y se re-valida el registro completo.
func (h Handlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, IDParam)

	// 404 antes que 400 para ids desconocidos
	if _, err := h.svc.GetByID(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	in, err := DecodeFields(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	if !res.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, apierror.NewValidation(res.Errors, in))
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(res.Record))
}

func (h Handlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, IDParam)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Choices devuelve una lista fija de opciones (ciudades, razas, etc).
func Choices(cs validation.ChoiceSet) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, cs.Values())
	}
}

// DecodeFields lee el cuerpo como formulario (urlencoded/multipart) o JSON.
// En JSON los números se conservan como texto y null equivale a "".
// Cuerpos de más de maxBodyBytes devuelven errBodyTooLarge.
func DecodeFields(w http.ResponseWriter, r *http.Request) (validation.Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			if tooLarge(err) {
				return nil, errBodyTooLarge
			}
			return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		out := validation.Fields{}
		for k, vs := range r.PostForm {
			if len(vs) > 0 {
				out[k] = vs[0]
			}
		}
		return out, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.Fields{}, nil
		}
		if tooLarge(err) {
			return nil, errBodyTooLarge
		}
		return nil, errors.New("invalid json")
	}

	out := make(validation.Fields, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case json.Number:
			out[k] = t.String()
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			return nil, fmt.Errorf("%w: field %q must be a string", errInvalidBody, k)
		}
	}
	return out, nil
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, apierror.New(err.Error()))
		return
	}
	writeJSON(w, http.StatusBadRequest, apierror.New(err.Error()))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, apierror.New("not found"))
		return
	}
	writeJSON(w, http.StatusInternalServerError, apierror.New("internal error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

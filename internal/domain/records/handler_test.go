package records

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"vetsoft/internal/platform/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFields_JSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Milo","weight":10.50,"dose":3,"notes":null,"ok":true}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	f, err := DecodeFields(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Equal(t, validation.Fields{
		"name":   "Milo",
		"weight": "10.50",
		"dose":   "3",
		"notes":  "",
		"ok":     "true",
	}, f)
}

func TestDecodeFields_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)

	f, err := DecodeFields(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestDecodeFields_Rejects(t *testing.T) {
	for _, body := range []string{`{"name":["a"]}`, `{"name":{"x":1}}`, `[1,2]`, `{nope`} {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		_, err := DecodeFields(httptest.NewRecorder(), r)
		assert.Error(t, err, body)
	}
}

func TestDecodeFields_Form(t *testing.T) {
	form := url.Values{"name": {"Milo", "ignored"}, "weight": {"10.5"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f, err := DecodeFields(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Equal(t, validation.Fields{"name": "Milo", "weight": "10.5"}, f)
}

func TestDecodeFields_BodyTooLarge(t *testing.T) {
	big := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	r.Header.Set("Content-Type", "application/json")
	_, err := DecodeFields(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, errBodyTooLarge)

	form := url.Values{"name": {strings.Repeat("a", maxBodyBytes)}}
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_, err = DecodeFields(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, errBodyTooLarge)
}

func TestHandlers_CreateBodyTooLarge(t *testing.T) {
	repo := newTestRepo()
	h := NewHandlers(newTestService(repo), func(v item) any { return v.Name })

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(`{"name":"`+strings.Repeat("a", 2*maxBodyBytes)+`","qty":"1"}`))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, repo.byID)
}

func TestHandlers_CreateStatusCodes(t *testing.T) {
	h := NewHandlers(newTestService(newTestRepo()), func(v item) any { return v.Name })

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(`{"name":"Tornillo","qty":"2"}`))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `"Tornillo"`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Create(rec, jsonRequest(`{"name":"","qty":"2"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"Error de validacion","fields":{"name":"nombre requerido"},"input":{"name":"","qty":"2"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Create(rec, jsonRequest(`{bad`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChoices(t *testing.T) {
	rec := httptest.NewRecorder()
	Choices(validation.NewChoiceSet("b", "a", "b"))(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["b","a"]`, rec.Body.String())
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

package clients

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientRequest_DocumentsEveryField(t *testing.T) {
	typ := reflect.TypeOf(clientRequest{})

	tags := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tags = append(tags, typ.Field(i).Tag.Get("json"))
	}
	assert.Equal(t, Rules.FieldNames(), tags)
}

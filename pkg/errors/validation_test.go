package errors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "item-api/pkg/errors"
)

type payload struct {
	Name  *string  `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	var p payload
	return binding.JSON.Bind(req, &p)
}

func TestFromBindError(t *testing.T) {
	pkgErrors.UseJSONFieldNames()

	tests := []struct {
		name     string
		body     string
		wantLoc  []string
		wantType string
	}{
		{"missing price", `{"name":"Widget"}`, []string{"body", "price"}, pkgErrors.TypeMissing},
		{"null name", `{"name":null,"price":1}`, []string{"body", "name"}, pkgErrors.TypeMissing},
		{"price is an unparsable string", `{"name":"Widget","price":"abc"}`, []string{"body", "price"}, pkgErrors.TypeFloatParsing},
		{"price is a bool", `{"name":"Widget","price":true}`, []string{"body", "price"}, pkgErrors.TypeFloatType},
		{"name is a number", `{"name":1,"price":1}`, []string{"body", "name"}, "string_type"},
		{"malformed json", `{"name":`, []string{"body"}, pkgErrors.TypeJSONInvalid},
		{"empty body", ``, []string{"body"}, pkgErrors.TypeJSONInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindJSON(t, tt.body)
			require.Error(t, err)

			httpErr := pkgErrors.FromBindError(pkgErrors.LocationBody, err)
			require.NotNil(t, httpErr)
			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
			require.NotEmpty(t, httpErr.Details)
			assert.Equal(t, tt.wantLoc, httpErr.Details[0].Location)
			assert.Equal(t, tt.wantType, httpErr.Details[0].Type)
		})
	}
}

func TestFromBindError_BothMissing(t *testing.T) {
	pkgErrors.UseJSONFieldNames()

	httpErr := pkgErrors.FromBindError(pkgErrors.LocationBody, bindJSON(t, `{}`))
	require.NotNil(t, httpErr)
	require.Len(t, httpErr.Details, 2)
	assert.Equal(t, []string{"body", "name"}, httpErr.Details[0].Location)
	assert.Equal(t, []string{"body", "price"}, httpErr.Details[1].Location)
}

func TestFromBindError_Passthrough(t *testing.T) {
	assert.Nil(t, pkgErrors.FromBindError(pkgErrors.LocationBody, nil))

	orig := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
	assert.Same(t, orig, pkgErrors.FromBindError(pkgErrors.LocationBody, orig))

	other := pkgErrors.FromBindError(pkgErrors.LocationQuery, errors.New("boom"))
	require.Len(t, other.Details, 1)
	assert.Equal(t, pkgErrors.TypeValueError, other.Details[0].Type)
	assert.Equal(t, []string{"query"}, other.Details[0].Location)
}

func TestIntParsing(t *testing.T) {
	err := pkgErrors.IntParsing(pkgErrors.LocationPath, "item_id", "abc")
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	require.Len(t, err.Details, 1)
	assert.Equal(t, []string{"path", "item_id"}, err.Details[0].Location)
	assert.Equal(t, pkgErrors.TypeIntParsing, err.Details[0].Type)
}

func TestFieldErrorJSON(t *testing.T) {
	b, err := json.Marshal(pkgErrors.FieldError{Location: []string{"body", "price"}, Message: "Field required", Type: "missing"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loc":["body","price"],"msg":"Field required","type":"missing"}`, string(b))
}

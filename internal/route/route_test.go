package route

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/authgate/internal/errors"
)

func sampleOperations() []Operation {
	return []Operation{
		{Method: "GET", Path: "/v1/me", Summary: "Current identity"},
		{
			Method: "GET",
			Path:   "/v1/units/:id",
			Params: []Param{{Name: "id", Type: TypeInteger, Description: "Unit id", Required: true}},
		},
		{
			Method: "GET",
			Path:   "/v1/routes",
			Params: []Param{{Name: "auth_token", Type: TypeString, Description: "Optional token", Required: false}},
		},
	}
}

func TestWithAuthToken(t *testing.T) {
	t.Run("adds the token parameter", func(t *testing.T) {
		out := WithAuthToken(sampleOperations())

		for _, op := range out {
			assert.True(t, op.HasParam("auth_token"), op.Path)
		}

		param, ok := out[0].Param("auth_token")
		require.True(t, ok)
		assert.Equal(t, Param{
			Name:        "auth_token",
			Type:        "String",
			Description: "Authentication token",
			Required:    true,
		}, param)

		assert.Len(t, out[1].Params, 2)
		assert.Equal(t, "id", out[1].Params[0].Name)
	})

	t.Run("keeps existing declarations", func(t *testing.T) {
		out := WithAuthToken(sampleOperations())

		require.Len(t, out[2].Params, 1)
		assert.False(t, out[2].Params[0].Required)
		assert.Equal(t, "Optional token", out[2].Params[0].Description)
	})

	t.Run("does not modify its input", func(t *testing.T) {
		in := sampleOperations()
		in[1].Params = append(make([]Param, 0, 4), in[1].Params...)

		_ = WithAuthToken(in)

		assert.Equal(t, sampleOperations()[0], in[0])
		assert.Len(t, in[1].Params, 1)
		assert.Equal(t, Param{}, in[1].Params[:2][1])
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := WithAuthToken(sampleOperations())
		twice := WithAuthToken(once)

		assert.Equal(t, once, twice)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, WithAuthToken(nil))
	})
}

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		wantErr bool
	}{
		{name: "valid", op: sampleOperations()[1]},
		{name: "missing method", op: Operation{Path: "/v1/me"}, wantErr: true},
		{name: "unknown method", op: Operation{Method: "FETCH", Path: "/v1/me"}, wantErr: true},
		{name: "relative path", op: Operation{Method: "GET", Path: "v1/me"}, wantErr: true},
		{
			name: "unknown param type",
			op: Operation{
				Method: "GET",
				Path:   "/v1/me",
				Params: []Param{{Name: "x", Type: "Blob"}},
			},
			wantErr: true,
		},
		{
			name: "blank param name",
			op: Operation{
				Method: "GET",
				Path:   "/v1/me",
				Params: []Param{{Name: " ", Type: TypeString}},
			},
			wantErr: true,
		},
		{
			name: "param name not snake case",
			op: Operation{
				Method: "GET",
				Path:   "/v1/me",
				Params: []Param{{Name: "AuthToken", Type: TypeString}},
			},
			wantErr: true,
		},
		{
			name: "duplicate param",
			op: Operation{
				Method: "GET",
				Path:   "/v1/me",
				Params: []Param{{Name: "x", Type: TypeString}, {Name: "x", Type: TypeInteger}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	op := WithAuthToken(sampleOperations())[1]

	schema := Schema(op)

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"id", "auth_token"}, schema.Required)

	id, ok := schema.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, "integer", id.Type)

	token, ok := schema.Properties.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "string", token.Type)
	assert.Equal(t, "Authentication token", token.Description)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"required":["id","auth_token"]`)
}

func TestSchema_OptionalToken(t *testing.T) {
	schema := Schema(WithAuthToken(sampleOperations())[2])

	assert.Empty(t, schema.Required)
	_, ok := schema.Properties.Get("auth_token")
	assert.True(t, ok)
}

// Package route describes the parameters each HTTP operation accepts.
//
// Declarations are plain values. WithAuthToken adds the authentication token parameter to
// every operation that does not declare it already, without mutating its input.
package route

import (
	"regexp"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	appValidation "github.com/allisson/authgate/internal/validation"
)

// Parameter types understood by Schema.
const (
	TypeString  = "String"
	TypeInteger = "Integer"
	TypeFloat   = "Float"
	TypeBoolean = "Boolean"
	TypeArray   = "Array"
	TypeHash    = "Hash"
)

var (
	methods   = []any{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	types     = []any{TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeArray, TypeHash}
	pathRegex = regexp.MustCompile(`^/[A-Za-z0-9_\-/:.*]*$`)
)

// Param declares one request parameter.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Validate checks the parameter declaration.
func (p Param) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, appValidation.NotBlank, appValidation.ParamName),
		validation.Field(&p.Type, validation.Required, validation.In(types...)),
	)
}

// Operation declares one HTTP operation and its parameters.
type Operation struct {
	Method  string  `json:"method"`
	Path    string  `json:"path"`
	Summary string  `json:"summary"`
	Params  []Param `json:"params"`
}

// Validate checks the operation and each of its parameters.
// Parameter names must be unique within an operation.
func (o Operation) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Method, validation.Required, validation.In(methods...)),
		validation.Field(&o.Path, validation.Required, validation.Match(pathRegex)),
		validation.Field(&o.Params, validation.By(uniqueNames)),
	)
	return appValidation.WrapValidationError(err)
}

// HasParam reports whether the operation declares a parameter called name.
func (o Operation) HasParam(name string) bool {
	for _, p := range o.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Param returns the declaration of the parameter called name.
func (o Operation) Param(name string) (Param, bool) {
	for _, p := range o.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (o Operation) clone() Operation {
	params := make([]Param, len(o.Params))
	copy(params, o.Params)
	o.Params = params
	return o
}

// AuthTokenParam is the declaration added to operations that do not declare the token themselves.
func AuthTokenParam() Param {
	return Param{
		Name:        authDomain.TokenParam,
		Type:        authDomain.TokenParamType,
		Description: authDomain.TokenParamDescription,
		Required:    true,
	}
}

// WithAuthToken returns a copy of ops in which every operation declares the token parameter.
// Operations that already declare it keep their own declaration unchanged. The input is not
// modified, and applying WithAuthToken to its own output yields an equal result.
func WithAuthToken(ops []Operation) []Operation {
	out := make([]Operation, len(ops))
	for i, op := range ops {
		op = op.clone()
		if !op.HasParam(authDomain.TokenParam) {
			op.Params = append(op.Params, AuthTokenParam())
		}
		out[i] = op
	}
	return out
}

func uniqueNames(value any) error {
	params, _ := value.([]Param)
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.Name]; ok {
			return validation.NewError("validation_duplicate_param", "duplicate parameter "+p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

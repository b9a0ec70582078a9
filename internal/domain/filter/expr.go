package filter

import (
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"

	"recyclehub/internal/core/apperror"
)

// Expr is a compiled boolean expression over a single record bound to `item`.
//
//	item.weight >= 100.0 && item.status == "agendado"
//	item.name.startsWith("Coop")
type Expr struct {
	source string
	prg    cel.Program
}

var env *cel.Env

func init() {
	var err error
	env, err = cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		panic(fmt.Sprintf("filter: cel env: %v", err))
	}
}

// Compile parses and type-checks source. The result must be boolean.
func Compile(source string) (*Expr, error) {
	ast, iss := env.Compile(source)
	if iss != nil && iss.Err() != nil {
		return nil, invalid(source, iss.Err())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, apperror.NewValidation("filter must be a boolean expression").
			WithDetail("filter", source).
			WithDetail("type", out.String())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, invalid(source, err)
	}
	return &Expr{source: source, prg: prg}, nil
}

// String returns the expression source.
func (e *Expr) String() string { return e.source }

// Match evaluates the expression against the JSON form of item.
func (e *Expr) Match(item any) (bool, error) {
	fields, err := toMap(item)
	if err != nil {
		return false, err
	}

	val, _, err := e.prg.Eval(map[string]any{"item": fields})
	if err != nil {
		return false, invalid(e.source, err)
	}
	ok, isBool := val.Value().(bool)
	if !isBool {
		return false, apperror.NewValidation("filter must be a boolean expression").
			WithDetail("filter", e.source)
	}
	return ok, nil
}

// Apply keeps the items matching source. An empty source keeps everything.
func Apply[T any](items []T, source string) ([]T, error) {
	if source == "" {
		return items, nil
	}
	expr, err := Compile(source)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		ok, err := expr.Match(it)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func toMap(item any) (map[string]any, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode filter item: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode filter item: %w", err)
	}
	return m, nil
}

func invalid(source string, err error) *apperror.AppError {
	return apperror.NewValidation("invalid filter: " + err.Error()).
		WithDetail("filter", source).
		WithCause(err)
}

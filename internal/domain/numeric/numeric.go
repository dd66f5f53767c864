// Package numeric evaluates an expression tree to a double-precision
// float, reusing the same Expr tree the rest of the engine operates on.
// Grounded in original_source's math/calculate.rs.
package numeric

import (
	"fmt"
	"math"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/physvalues"
)

// Calculate evaluates e to a float64. Letter and Vector leaves are
// resolved first against overrides, then against values; Integer and
// Rational leaves convert directly; Pi/E constants map to their
// math package counterparts. A Letter/Vector absent from both
// overrides and values reports mathkinds.ErrMissingValue. Eq is not
// numerically evaluable and reports mathkinds.ErrUnsupportedOperation.
func Calculate(e expr.Expr, values physvalues.Provider, overrides map[string]float64) (float64, error) {
	switch x := e.(type) {
	case expr.Var:
		return calculateVariable(x.V, values, overrides)
	case expr.Neg:
		v, err := Calculate(x.X, values, overrides)
		return -v, err
	case expr.Add:
		sum := 0.0
		for _, t := range x.Terms {
			v, err := Calculate(t, values, overrides)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	case expr.Mul:
		product := 1.0
		for _, f := range x.Factors {
			v, err := Calculate(f, values, overrides)
			if err != nil {
				return 0, err
			}
			product *= v
		}
		return product, nil
	case expr.Div:
		num, err := Calculate(x.Num, values, overrides)
		if err != nil {
			return 0, err
		}
		denom, err := Calculate(x.Denom, values, overrides)
		if err != nil {
			return 0, err
		}
		if denom == 0 {
			return 0, fmt.Errorf("calculate %v/%v: %w", x.Num, x.Denom, mathkinds.ErrDivisionByZero)
		}
		return num / denom, nil
	case expr.Pow:
		base, err := Calculate(x.Base, values, overrides)
		if err != nil {
			return 0, err
		}
		exp, err := Calculate(x.Exp, values, overrides)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case expr.Ln:
		v, err := Calculate(x.X, values, overrides)
		if err != nil {
			return 0, err
		}
		return math.Log(v), nil
	case expr.Sin:
		v, err := Calculate(x.X, values, overrides)
		return math.Sin(v), err
	case expr.Cos:
		v, err := Calculate(x.X, values, overrides)
		return math.Cos(v), err
	case expr.Arcsin:
		v, err := Calculate(x.X, values, overrides)
		return math.Asin(v), err
	case expr.Arccos:
		v, err := Calculate(x.X, values, overrides)
		return math.Acos(v), err
	case expr.Arctan:
		v, err := Calculate(x.X, values, overrides)
		return math.Atan(v), err
	case expr.Abs:
		v, err := Calculate(x.X, values, overrides)
		return math.Abs(v), err
	case expr.Eq:
		return 0, fmt.Errorf("calculate equation: %w", mathkinds.ErrUnsupportedOperation)
	default:
		return 0, fmt.Errorf("calculate %T: %w", e, mathkinds.ErrUnsupportedOperation)
	}
}

func calculateVariable(v expr.Variable, values physvalues.Provider, overrides map[string]float64) (float64, error) {
	switch vv := v.(type) {
	case expr.Integer:
		return float64(vv.Value), nil
	case expr.Rational:
		return vv.Float64(), nil
	case expr.Constant:
		switch vv.Kind {
		case expr.Pi:
			return math.Pi, nil
		case expr.E:
			return math.E, nil
		}
		return 0, fmt.Errorf("calculate: unknown constant: %w", mathkinds.ErrUnsupportedOperation)
	case expr.Letter:
		if f, ok := overrides[vv.Name]; ok {
			return f, nil
		}
		if values != nil {
			if f, ok := values.Lookup(vv.Name); ok {
				return f, nil
			}
		}
		return 0, fmt.Errorf("calculate: %s: %w", vv.Name, mathkinds.ErrMissingValue)
	case expr.Vector:
		if f, ok := overrides[vv.Name]; ok {
			return f, nil
		}
		if values != nil {
			if f, ok := values.Lookup(vv.Name); ok {
				return f, nil
			}
		}
		return 0, fmt.Errorf("calculate: %s: %w", vv.Name, mathkinds.ErrMissingValue)
	default:
		return 0, fmt.Errorf("calculate: unsupported variable: %w", mathkinds.ErrUnsupportedOperation)
	}
}

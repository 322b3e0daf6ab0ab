package query

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsondoc/pointer"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("number", func(params ...any) (any, error) {
			s := params[0].(string)
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("number(%q): %w", s, err)
			}
			return f, nil
		},
			new(func(string) float64)),
		expr.Function("parent", func(params ...any) (any, error) {
			p, _ := pointer.Parent(params[0].(string))
			return p, nil
		},
			new(func(string) string)),
	}
}

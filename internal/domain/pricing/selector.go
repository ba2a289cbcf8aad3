package pricing

import (
	"maps"
	"slices"
	"sync"

	"checkout-engine/internal/domain/catalog"

	"github.com/google/cel-go/cel"
	"github.com/google/uuid"
)

// Selector targets variants. Include lists and attributes are ANDed; an empty
// include side matches every variant. Excludes always win.
type Selector struct {
	variantIDs        []uuid.UUID
	productIDs        []uuid.UUID
	excludeVariantIDs []uuid.UUID
	attributes        map[string]string
	expression        string
}

type SelectorParams struct {
	VariantIDs        []uuid.UUID
	ProductIDs        []uuid.UUID
	ExcludeVariantIDs []uuid.UUID
	Attributes        map[string]string
	// Expression is a CEL predicate over variant_id, product_id, sku,
	// attributes and quantity.
	Expression string
}

func NewSelector(p SelectorParams) (Selector, error) {
	if p.Expression != "" {
		if _, err := compileExpression(p.Expression); err != nil {
			return Selector{}, err
		}
	}
	return Selector{
		variantIDs:        sortedIDs(p.VariantIDs),
		productIDs:        sortedIDs(p.ProductIDs),
		excludeVariantIDs: sortedIDs(p.ExcludeVariantIDs),
		attributes:        maps.Clone(p.Attributes),
		expression:        p.Expression,
	}, nil
}

func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b uuid.UUID) int { return compareIDs(a, b) })
	return slices.Compact(out)
}

func (s Selector) Matches(v *catalog.Variant, quantity int) bool {
	if slices.Contains(s.excludeVariantIDs, v.ID()) {
		return false
	}
	if len(s.variantIDs) > 0 || len(s.productIDs) > 0 {
		if !slices.Contains(s.variantIDs, v.ID()) && !slices.Contains(s.productIDs, v.ProductID()) {
			return false
		}
	}
	for k, want := range s.attributes {
		if got, ok := v.Attribute(k); !ok || got != want {
			return false
		}
	}
	if s.expression != "" {
		return evalExpression(s.expression, v, quantity)
	}
	return true
}

func (s Selector) IsEmpty() bool {
	return len(s.variantIDs) == 0 && len(s.productIDs) == 0 && len(s.excludeVariantIDs) == 0 &&
		len(s.attributes) == 0 && s.expression == ""
}

func (s Selector) VariantIDs() []uuid.UUID        { return slices.Clone(s.variantIDs) }
func (s Selector) ProductIDs() []uuid.UUID        { return slices.Clone(s.productIDs) }
func (s Selector) ExcludeVariantIDs() []uuid.UUID { return slices.Clone(s.excludeVariantIDs) }
func (s Selector) Attributes() map[string]string  { return maps.Clone(s.attributes) }
func (s Selector) Expression() string             { return s.expression }

var (
	celEnv = sync.OnceValues(func() (*cel.Env, error) {
		return cel.NewEnv(
			cel.Variable("variant_id", cel.StringType),
			cel.Variable("product_id", cel.StringType),
			cel.Variable("sku", cel.StringType),
			cel.Variable("attributes", cel.MapType(cel.StringType, cel.StringType)),
			cel.Variable("quantity", cel.IntType),
		)
	})
	programs sync.Map // expression -> cel.Program
)

func compileExpression(expr string) (cel.Program, error) {
	if p, ok := programs.Load(expr); ok {
		return p.(cel.Program), nil
	}
	env, err := celEnv()
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, ErrInvalidRule
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, ErrInvalidRule
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, ErrInvalidRule
	}
	actual, _ := programs.LoadOrStore(expr, prg)
	return actual.(cel.Program), nil
}

// evalExpression treats evaluation errors (e.g. a missing attribute key) as no match.
func evalExpression(expr string, v *catalog.Variant, quantity int) bool {
	prg, err := compileExpression(expr)
	if err != nil {
		return false
	}
	out, _, err := prg.Eval(map[string]any{
		"variant_id": v.ID().String(),
		"product_id": v.ProductID().String(),
		"sku":        v.SKU(),
		"attributes": v.Attributes(),
		"quantity":   int64(quantity),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

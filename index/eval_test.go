package index

import (
	"fmt"

	"framix/vector"
)

// cellVector is the test vector: a plain cell slice.
type cellVector []vector.Cell

func (v cellVector) Len() int { return len(v) }

// testBuilder is a miniature vector layer used to check plans
// extensionally: two plans are equivalent when they build the same cells.
type testBuilder struct{}

func (testBuilder) CreateMissing(cells []vector.Cell) vector.Vector {
	return cellVector(cells)
}

func (testBuilder) Build(plan vector.Node, inputs []vector.Vector) vector.Vector {
	return evalPlan(plan, inputs)
}

func evalPlan(plan vector.Node, inputs []vector.Vector) cellVector {
	switch p := plan.(type) {
	case *vector.Return:
		return inputs[p.Source].(cellVector)
	case *vector.Empty:
		return nil
	case *vector.Relocate:
		src := evalPlan(p.Source, inputs)
		out := make(cellVector, p.Range.Len())
		for _, pr := range p.Pairs {
			out[pr.New-p.Range.Lo] = src[pr.Old]
		}
		return out
	case *vector.GetRange:
		src := evalPlan(p.Source, inputs)
		if p.Range.Empty() {
			return nil
		}
		return src[p.Range.Lo : p.Range.Hi+1]
	case *vector.DropRange:
		src := evalPlan(p.Source, inputs)
		out := make(cellVector, 0, len(src)-p.Range.Len())
		out = append(out, src[:p.Range.Lo]...)
		out = append(out, src[p.Range.Hi+1:]...)
		return out
	case *vector.Combine:
		l := evalPlan(p.Left, inputs)
		r := evalPlan(p.Right, inputs)
		out := make(cellVector, len(l))
		for i := range l {
			out[i] = mergeCells(l[i], r[i], p.How)
		}
		return out
	case *vector.FillMissing:
		src := evalPlan(p.Source, inputs)
		out := make(cellVector, len(src))
		copy(out, src)
		switch pol := p.Policy.(type) {
		case *vector.FillConstant:
			for i := range out {
				if !out[i].OK {
					out[i] = vector.Present(pol.Value)
				}
			}
		case *vector.FillDirection:
			if pol.Direction == vector.Forward {
				for i := 1; i < len(out); i++ {
					if !out[i].OK {
						out[i] = out[i-1]
					}
				}
			} else {
				for i := len(out) - 2; i >= 0; i-- {
					if !out[i].OK {
						out[i] = out[i+1]
					}
				}
			}
		}
		return out
	default:
		panic(fmt.Sprintf("evalPlan: unknown node %T", plan))
	}
}

func mergeCells(l, r vector.Cell, how vector.Transform) vector.Cell {
	switch h := how.(type) {
	case *vector.PreferLeft:
		if l.OK {
			return l
		}
		return r
	case *vector.PreferRight:
		if r.OK {
			return r
		}
		return l
	case *vector.TransformFunc:
		return h.Fn(l, r)
	default:
		panic(fmt.Sprintf("mergeCells: unknown transform %T", how))
	}
}

// cellsOf wraps plain values into present cells.
func cellsOf(vals ...any) cellVector {
	out := make(cellVector, len(vals))
	for i, v := range vals {
		out[i] = vector.Present(v)
	}
	return out
}

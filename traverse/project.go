package traverse

import (
	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/errors"
)

// ProjectKind selects what a projected column reads from the cursor.
type ProjectKind int

const (
	// ProjectColumn reads a raw result column by name.
	ProjectColumn ProjectKind = iota
	// ProjectTagProp reads a tag property, Entity.Prop.
	ProjectTagProp
	// ProjectEdgeProp reads an edge property, Entity.Prop. Entity may be "*".
	ProjectEdgeProp
	// ProjectVertex materializes the step's vertex record.
	ProjectVertex
	// ProjectEdge materializes the step's edge record.
	ProjectEdge
)

// Projection is one output column of a projection over a traversal cursor.
type Projection struct {
	Alias  string
	Kind   ProjectKind
	Entity string // tag or edge name; also the raw column name for ProjectColumn
	Prop   string
}

// Project drains the iterator, evaluating each projection per step, and
// returns the resulting dataset. Per-step lookup degradations surface as
// null cells, the same way they do through the accessors.
func Project(iter *NeighborsIter, projections []Projection) (*common.Dataset, error) {
	if len(projections) == 0 {
		return nil, errors.Errorf("projection needs at least one column")
	}
	ds := &common.Dataset{ColNames: make([]string, len(projections))}
	for i, proj := range projections {
		ds.ColNames[i] = proj.Alias
	}
	for ; iter.Valid(); iter.Next() {
		row := make([]common.Value, len(projections))
		for i, proj := range projections {
			row[i] = evalProjection(iter, proj)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func evalProjection(iter *NeighborsIter, proj Projection) common.Value {
	switch proj.Kind {
	case ProjectColumn:
		return iter.GetColumn(proj.Entity)
	case ProjectTagProp:
		return iter.GetTagProp(proj.Entity, proj.Prop)
	case ProjectEdgeProp:
		return iter.GetEdgeProp(proj.Entity, proj.Prop)
	case ProjectVertex:
		return iter.GetVertex()
	case ProjectEdge:
		return iter.GetEdge()
	default:
		return common.Null
	}
}

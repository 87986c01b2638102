package traverse

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/hopgraph/hopdb/common"
)

// NeighborsIter is a forward-only cursor over the logical rows of one or
// more traversal result segments. It is not safe for concurrent use and
// holds references into the caller-owned segments, which must outlive it.
type NeighborsIter struct {
	segments []*Segment
	indices  []*segmentIndex
	rows     []logicalRow
	pos      int
	valid    bool
}

// NewNeighborsIter builds an iterator from a storage response value, which
// must be a list of datasets. On any schema error the returned iterator is
// exhausted with no partial state and the error describes the violation.
func NewNeighborsIter(value common.Value) (*NeighborsIter, error) {
	segments, err := SegmentsFromValue(value)
	if err != nil {
		log.Errorf("failed to decode traversal result: %v", err)
		return &NeighborsIter{}, err
	}
	return NewNeighborsIterFromSegments(segments)
}

// NewNeighborsIterFromSegments builds an iterator over already-constructed
// segments. Segment order defines segment ids used by logical rows.
func NewNeighborsIterFromSegments(segments []*Segment) (*NeighborsIter, error) {
	it := &NeighborsIter{segments: segments}
	for i, seg := range segments {
		seg.ID = i
		idx, err := buildSegmentIndex(seg)
		if err != nil {
			log.Errorf("failed to index result segment %d: %v", seg.ID, err)
			return &NeighborsIter{}, err
		}
		it.indices = append(it.indices, idx)
		it.rows, _ = expandSegment(seg, idx, it.rows)
	}
	it.valid = len(it.rows) > 0
	return it, nil
}

// Valid reports whether the cursor is positioned on a logical row.
func (it *NeighborsIter) Valid() bool {
	return it.valid
}

// Next advances the cursor; once the rows are consumed the iterator is
// exhausted and stays so.
func (it *NeighborsIter) Next() {
	if !it.valid {
		return
	}
	it.pos++
	if it.pos >= len(it.rows) {
		it.valid = false
	}
}

// Size returns the total number of logical rows in the iterator.
func (it *NeighborsIter) Size() int {
	return len(it.rows)
}

func (it *NeighborsIter) cur() *logicalRow {
	return &it.rows[it.pos]
}

// EdgeName returns the active edge name of the current step, empty for a
// vertex-only step or an invalid cursor.
func (it *NeighborsIter) EdgeName() string {
	if !it.valid {
		return ""
	}
	return it.cur().edgeName
}

// GetColumn returns the raw value of the named column in the current row.
// Returns Null on an invalid cursor or an unknown column.
func (it *NeighborsIter) GetColumn(col string) common.Value {
	if !it.valid {
		return common.Null
	}
	lr := it.cur()
	colIdx, ok := it.indices[lr.segID].colIndices[col]
	if !ok {
		return common.Null
	}
	return lr.row[colIdx]
}

// GetTagProp returns the named property of the named tag for the current
// row. An unknown tag or property yields Null; a tag column that is not
// list-valued yields the bad-type null. Both degrade the single lookup,
// never the scan.
func (it *NeighborsIter) GetTagProp(tag string, prop string) common.Value {
	if !it.valid {
		return common.Null
	}
	lr := it.cur()
	pi, ok := it.indices[lr.segID].tagProps[tag]
	if !ok {
		return common.Null
	}
	offset, ok := pi.propIndices[prop]
	if !ok {
		return common.Null
	}
	cell := lr.row[pi.colIdx]
	if !cell.IsList() {
		log.Debugf("tag %s props column is not a list, type: %s", tag, cell.Kind())
		return common.BadTypeNull
	}
	props := cell.GetList().Values
	if offset >= len(props) {
		log.Debugf("tag %s props list is short: want offset %d, len %d", tag, offset, len(props))
		return common.BadTypeNull
	}
	return props[offset]
}

// GetEdgeProp returns the named property of the current step's active edge
// instance. The edge argument must match the active edge name, or be "*" to
// match any edge. Mismatches and unknown names yield Null.
func (it *NeighborsIter) GetEdgeProp(edge string, prop string) common.Value {
	if !it.valid {
		return common.Null
	}
	lr := it.cur()
	if edge != "*" && edge != lr.edgeName {
		log.Debugf("current edge: %s, wanted: %s", lr.edgeName, edge)
		return common.Null
	}
	pi, ok := it.indices[lr.segID].edgeProps[lr.edgeName]
	if !ok {
		log.Debugf("no edge found: %s", edge)
		return common.Null
	}
	offset, ok := pi.propIndices[prop]
	if !ok {
		log.Debugf("no prop %s found on edge %s", prop, lr.edgeName)
		return common.Null
	}
	if lr.edgeProps == nil || offset >= len(lr.edgeProps.Values) {
		return common.BadTypeNull
	}
	return lr.edgeProps.Values[offset]
}

// GetVertex materializes the full vertex record for the current row: the
// "_vid" column as id plus one tag per entry in the segment's tag partition.
// Tags are emitted in name order so materialization is deterministic.
func (it *NeighborsIter) GetVertex() common.Value {
	if !it.valid {
		return common.Null
	}
	vidVal := it.GetColumn(common.VidCol)
	if !vidVal.IsStr() {
		return common.BadTypeNull
	}
	lr := it.cur()
	idx := it.indices[lr.segID]
	vertex := &common.Vertex{VID: vidVal.GetStr()}
	for _, tagName := range sortedNames(idx.tagProps) {
		pi := idx.tagProps[tagName]
		cell := lr.row[pi.colIdx]
		if !cell.IsList() {
			// Ignore the bad value.
			continue
		}
		props := cell.GetList().Values
		if len(props) != len(pi.propList) {
			panic(fmt.Sprintf("tag %s has %d declared props but %d values", tagName, len(pi.propList), len(props)))
		}
		tag := common.Tag{Name: tagName, Props: make(map[string]common.Value, len(props))}
		for i, propVal := range props {
			tag.Props[pi.propList[i]] = propVal
		}
		vertex.Tags = append(vertex.Tags, tag)
	}
	return common.NewVertex(vertex)
}

// GetEdge materializes the full edge record for the current step. The source
// id comes from the "_vid" column, destination and rank from the reserved
// "_dst" and "_rank" properties of the edge instance. The schema does not
// carry the edge type so it is left zero. Reserved topology names are
// excluded from the property map.
func (it *NeighborsIter) GetEdge() common.Value {
	if !it.valid {
		return common.Null
	}
	lr := it.cur()
	edgeName := lr.edgeName

	src := it.GetColumn(common.VidCol)
	if !src.IsStr() {
		return common.BadTypeNull
	}
	dst := it.GetEdgeProp(edgeName, common.DstProp)
	if !dst.IsStr() {
		return common.BadTypeNull
	}
	rank := it.GetEdgeProp(edgeName, common.RankProp)
	if !rank.IsInt() {
		return common.BadTypeNull
	}

	pi, ok := it.indices[lr.segID].edgeProps[edgeName]
	if !ok {
		return common.Null
	}
	propVals := lr.edgeProps.Values
	if len(propVals) != len(pi.propList) {
		panic(fmt.Sprintf("edge %s has %d declared props but %d values", edgeName, len(pi.propList), len(propVals)))
	}
	edge := &common.Edge{
		Name:  edgeName,
		Src:   src.GetStr(),
		Dst:   dst.GetStr(),
		Rank:  rank.GetInt(),
		Props: make(map[string]common.Value),
	}
	for i, propVal := range propVals {
		propName := pi.propList[i]
		if propName == common.SrcProp || propName == common.DstProp ||
			propName == common.RankProp || propName == common.TypeProp {
			continue
		}
		edge.Props[propName] = propVal
	}
	return common.NewEdge(edge)
}

func sortedNames(m map[string]*propIndex) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

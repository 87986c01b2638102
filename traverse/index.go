package traverse

import (
	"strings"

	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/errors"
	"github.com/hopgraph/hopdb/metrics"
)

// noEdgeColumns is the edgeStart sentinel for a segment with no edge columns.
const noEdgeColumns = -1

// propIndex locates one tag or edge within a segment: the column holding its
// nested property list, the declared property names in order, and a
// name-to-offset map for O(1) lookup inside the nested list.
type propIndex struct {
	colIdx      int
	propList    []string
	propIndices map[string]int
}

// segmentIndex is the reusable decode index for one segment, built once from
// the column names. Tag and edge partitions are kept separate since a tag
// and an edge may share a name.
type segmentIndex struct {
	colIndices  map[string]int
	entityNames map[int]string // tag/edge columns only
	tagProps    map[string]*propIndex
	edgeProps   map[string]*propIndex
	edgeStart   int
}

// The column layout contract: "_vid" first, a "_stats" column second and a
// trailing "_expr" column last. Everything in between is tag/edge data.
func checkColNames(colNames []string) bool {
	return len(colNames) < 3 || colNames[0] != common.VidCol ||
		!strings.HasPrefix(colNames[1], statsColPrefix) ||
		!strings.HasPrefix(colNames[len(colNames)-1], exprColPrefix)
}

// buildSegmentIndex parses all column names of a segment into a segmentIndex.
// Any malformed column name aborts the whole segment: a broken schema
// invalidates the interpretation of every row, so there is nothing to salvage.
func buildSegmentIndex(seg *Segment) (*segmentIndex, error) {
	colNames := seg.ds.ColNames
	if checkColNames(colNames) {
		metrics.SegmentsRejected.Inc()
		return nil, errors.NewInvalidBatchShapeError("bad column names")
	}
	idx := &segmentIndex{
		colIndices:  make(map[string]int, len(colNames)),
		entityNames: make(map[int]string),
		tagProps:    make(map[string]*propIndex),
		edgeProps:   make(map[string]*propIndex),
		edgeStart:   noEdgeColumns,
	}
	for i, colName := range colNames {
		idx.colIndices[colName] = i
		cs, err := parseColumn(colName)
		if err != nil {
			metrics.SegmentsRejected.Inc()
			return nil, err
		}
		switch cs.role {
		case roleTagProps:
			idx.entityNames[i] = cs.name
			idx.tagProps[cs.name] = newPropIndex(i, cs.props)
		case roleEdgeProps:
			idx.entityNames[i] = cs.name
			idx.edgeProps[cs.name] = newPropIndex(i, cs.props)
			if idx.edgeStart == noEdgeColumns {
				idx.edgeStart = i
			}
		default:
			// "_vid", "_stats", "_expr": position index only.
		}
	}
	metrics.SegmentsIndexed.Inc()
	return idx, nil
}

func newPropIndex(colIdx int, props []string) *propIndex {
	pi := &propIndex{
		colIdx:      colIdx,
		propList:    props,
		propIndices: make(map[string]int, len(props)),
	}
	for i, prop := range props {
		pi.propIndices[prop] = i
	}
	return pi
}

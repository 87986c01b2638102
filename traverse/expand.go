package traverse

import (
	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/metrics"
)

// logicalRow is one iteration step: a physical row paired with at most one
// active edge instance. When edgeName is empty the step carries vertex data
// only and edgeProps is nil; otherwise edgeProps points at the property list
// of one edge instance found in one of the row's edge columns.
type logicalRow struct {
	segID     int
	row       []common.Value
	edgeName  string
	edgeProps *common.List
}

// expandStats reports the row-local degradations seen while expanding a
// segment. These never fail the segment; schema errors do, and are returned
// separately by buildSegmentIndex.
type expandStats struct {
	logicalRows  int
	skippedCells int
}

// expandSegment flattens a segment's physical rows into logical rows,
// appended to out in row order.
//
// A segment with no edge columns yields exactly one logical row per physical
// row. Otherwise each list-valued element of each list-valued edge column
// yields one logical row; non-list cells and elements are placeholders for
// edge types that do not apply to the row's vertex and are skipped. Note a
// row whose edge columns hold no edge instances at all contributes nothing,
// so its tag data is unreachable through this expansion; callers that need
// such rows must use a vertex-only batch instead.
func expandSegment(seg *Segment, idx *segmentIndex, out []logicalRow) ([]logicalRow, expandStats) {
	var stats expandStats
	if idx.edgeStart == noEdgeColumns {
		for _, row := range seg.ds.Rows {
			out = append(out, logicalRow{segID: seg.ID, row: row})
			stats.logicalRows++
		}
		metrics.LogicalRows.Add(float64(stats.logicalRows))
		return out, stats
	}
	for _, row := range seg.ds.Rows {
		// The last column is the trailing "_expr" column, never edge data.
		for col := idx.edgeStart; col < len(row)-1; col++ {
			if !row[col].IsList() {
				stats.skippedCells++
				continue
			}
			edgeName := idx.entityNames[col]
			for _, edge := range row[col].GetList().Values {
				if !edge.IsList() {
					stats.skippedCells++
					continue
				}
				out = append(out, logicalRow{
					segID:     seg.ID,
					row:       row,
					edgeName:  edgeName,
					edgeProps: edge.GetList(),
				})
				stats.logicalRows++
			}
		}
	}
	metrics.LogicalRows.Add(float64(stats.logicalRows))
	metrics.SkippedCells.Add(float64(stats.skippedCells))
	return out, stats
}

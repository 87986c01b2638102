package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hopgraph/hopdb/common"
)

func expandTestSegment(t *testing.T, ds *common.Dataset) ([]logicalRow, expandStats) {
	t.Helper()
	seg := NewSegment(0, ds)
	idx, err := buildSegmentIndex(seg)
	require.NoError(t, err)
	return expandSegment(seg, idx, nil)
}

// A segment with no edge columns decodes one-to-one: one logical row per
// physical row.
func TestExpandVertexOnlySegment(t *testing.T) {
	rows, stats := expandTestSegment(t, propsDataset())
	require.Len(t, rows, 3)
	require.Equal(t, 0, stats.skippedCells)
	vids := []string{"1", "2", "3"}
	for i, lr := range rows {
		require.Equal(t, 0, lr.segID)
		require.Equal(t, "", lr.edgeName)
		require.Nil(t, lr.edgeProps)
		require.Equal(t, common.NewString(vids[i]), lr.row[0])
	}
}

func TestExpandEdgeSegment(t *testing.T) {
	rows, stats := expandTestSegment(t, neighborsDataset())
	// Two edge instances on row one; row two has an empty edge list so it
	// contributes nothing, dropping its tag data from the expansion.
	require.Len(t, rows, 2)
	require.Equal(t, 2, stats.logicalRows)
	for _, lr := range rows {
		require.Equal(t, "follow", lr.edgeName)
		require.NotNil(t, lr.edgeProps)
		require.Equal(t, common.NewString("1"), lr.row[0])
	}
	require.Equal(t, common.NewString("bob"), rows[0].edgeProps.Values[0])
	require.Equal(t, common.NewString("carol"), rows[1].edgeProps.Values[0])
}

func TestExpandRowWithNoEdgeInstancesIsDropped(t *testing.T) {
	ds := testDataset(neighborsColNames, [][]interface{}{
		{"2", nil, []interface{}{"bob", 25}, []interface{}{}, nil},
	})
	rows, stats := expandTestSegment(t, ds)
	require.Empty(t, rows)
	require.Equal(t, 0, stats.skippedCells)
}

// Placeholder cells and elements that are not lists are skipped without
// affecting sibling elements.
func TestExpandSkipsNonListValues(t *testing.T) {
	ds := testDataset(
		[]string{"_vid", "_stats", "_edge:+follow:_dst:_rank", "_edge:+serve:_dst:_rank", "_expr"},
		[][]interface{}{
			{"1", nil, nil, []interface{}{
				[]interface{}{"team1", 0},
				"bad element",
				[]interface{}{"team2", 1},
			}, nil},
		})
	rows, stats := expandTestSegment(t, ds)
	require.Len(t, rows, 2)
	// One non-list follow cell, one non-list serve element.
	require.Equal(t, 2, stats.skippedCells)
	require.Equal(t, "serve", rows[0].edgeName)
	require.Equal(t, common.NewString("team1"), rows[0].edgeProps.Values[0])
	require.Equal(t, common.NewString("team2"), rows[1].edgeProps.Values[0])
}

// Edge instances across multiple edge columns of one row all become steps,
// in column order.
func TestExpandMultipleEdgeColumns(t *testing.T) {
	ds := testDataset(
		[]string{"_vid", "_stats", "_edge:+follow:_dst:_rank", "_edge:-serve:_dst:_rank", "_expr"},
		[][]interface{}{
			{"1", nil,
				[]interface{}{[]interface{}{"bob", 0}},
				[]interface{}{[]interface{}{"team1", 0}, []interface{}{"team2", 0}},
				nil},
		})
	rows, _ := expandTestSegment(t, ds)
	require.Len(t, rows, 3)
	require.Equal(t, "follow", rows[0].edgeName)
	require.Equal(t, "serve", rows[1].edgeName)
	require.Equal(t, "serve", rows[2].edgeName)
}

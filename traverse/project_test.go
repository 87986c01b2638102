package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hopgraph/hopdb/common"
)

func TestProjectProps(t *testing.T) {
	iter := neighborsIter(t, neighborsDataset())
	ds, err := Project(iter, []Projection{
		{Alias: "id", Kind: ProjectColumn, Entity: "_vid"},
		{Alias: "name", Kind: ProjectTagProp, Entity: "person", Prop: "name"},
		{Alias: "dst", Kind: ProjectEdgeProp, Entity: "follow", Prop: "_dst"},
		{Alias: "since", Kind: ProjectEdgeProp, Entity: "*", Prop: "since"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "dst", "since"}, ds.ColNames)
	require.Equal(t, [][]common.Value{
		{common.NewString("1"), common.NewString("alice"), common.NewString("bob"), common.NewInt(2020)},
		{common.NewString("1"), common.NewString("alice"), common.NewString("carol"), common.NewInt(2018)},
	}, ds.Rows)
	// Projection drains the cursor.
	require.False(t, iter.Valid())
}

func TestProjectRecords(t *testing.T) {
	iter := neighborsIter(t, neighborsDataset())
	ds, err := Project(iter, []Projection{
		{Alias: "v", Kind: ProjectVertex},
		{Alias: "e", Kind: ProjectEdge},
	})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)
	require.True(t, ds.Rows[0][0].IsVertex())
	require.True(t, ds.Rows[0][1].IsEdge())
	require.Equal(t, "bob", ds.Rows[0][1].GetEdge().Dst)
	require.Equal(t, "carol", ds.Rows[1][1].GetEdge().Dst)
}

func TestProjectUnknownNamesYieldNulls(t *testing.T) {
	iter := neighborsIter(t, propsDataset())
	ds, err := Project(iter, []Projection{
		{Alias: "missing", Kind: ProjectTagProp, Entity: "nosuch", Prop: "name"},
	})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 3)
	for _, row := range ds.Rows {
		require.True(t, row[0].IsNull())
	}
}

func TestProjectNoColumns(t *testing.T) {
	iter := neighborsIter(t, propsDataset())
	_, err := Project(iter, nil)
	require.Error(t, err)
}

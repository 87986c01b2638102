package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hopgraph/hopdb/errors"
)

func TestParseTagColumn(t *testing.T) {
	cs, err := parseColumn("_tag:person:name:age")
	require.NoError(t, err)
	require.Equal(t, roleTagProps, cs.role)
	require.Equal(t, "person", cs.name)
	require.Equal(t, []string{"name", "age"}, cs.props)
}

func TestParseTagColumnNoProps(t *testing.T) {
	cs, err := parseColumn("_tag:person")
	require.NoError(t, err)
	require.Equal(t, roleTagProps, cs.role)
	require.Equal(t, "person", cs.name)
	require.Empty(t, cs.props)
}

func TestParseEdgeColumn(t *testing.T) {
	cs, err := parseColumn("_edge:+follow:_dst:_rank:since")
	require.NoError(t, err)
	require.Equal(t, roleEdgeProps, cs.role)
	require.Equal(t, "follow", cs.name)
	require.Equal(t, byte('+'), cs.sign)
	require.Equal(t, []string{"_dst", "_rank", "since"}, cs.props)
}

func TestParseEdgeColumnReversed(t *testing.T) {
	cs, err := parseColumn("_edge:-follow:_dst:_rank")
	require.NoError(t, err)
	require.Equal(t, "follow", cs.name)
	require.Equal(t, byte('-'), cs.sign)
}

func TestParseEdgeColumnNoSign(t *testing.T) {
	_, err := parseColumn("_edge:follow:_dst")
	require.Error(t, err)
	var herr errors.HopError
	require.True(t, errors.As(err, &herr))
	require.Equal(t, errors.MalformedEdgeName, herr.Code)
}

func TestParseTagColumnTooFewTokens(t *testing.T) {
	_, err := parseColumn("_tag")
	require.Error(t, err)
	var herr errors.HopError
	require.True(t, errors.As(err, &herr))
	require.Equal(t, errors.MalformedColumnName, herr.Code)
}

func TestParseFixedRoleColumns(t *testing.T) {
	for colName, role := range map[string]columnRole{
		"_vid":            roleVid,
		"_stats":          roleStats,
		"_stats:whatever": roleStats,
		"_expr":           roleExpr,
		"_expr:$p":        roleExpr,
		"anything":        roleOther,
	} {
		cs, err := parseColumn(colName)
		require.NoError(t, err)
		require.Equal(t, role, cs.role, "column %s", colName)
	}
}

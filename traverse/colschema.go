package traverse

import (
	"strings"

	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/errors"
)

// columnRole classifies a result column by the role encoded in its name.
type columnRole int

const (
	roleVid columnRole = iota
	roleStats
	roleExpr
	roleTagProps
	roleEdgeProps
	roleOther
)

const (
	tagColPrefix   = "_tag"
	edgeColPrefix  = "_edge"
	statsColPrefix = "_stats"
	exprColPrefix  = "_expr"
)

// columnSchema is the decoded form of one column name. Tag columns are named
// "_tag:<tagName>:<prop>..." and edge columns "_edge:<sign><edgeName>:<prop>..."
// where <sign> is a single leading '+' or '-'. The sign marks the traversal
// direction; it is carried through but never interpreted here.
type columnSchema struct {
	role  columnRole
	name  string // tag or edge name, sign stripped
	sign  byte   // '+' or '-', edge columns only
	props []string
}

func classifyColumn(colName string) columnRole {
	switch {
	case colName == common.VidCol:
		return roleVid
	case strings.HasPrefix(colName, tagColPrefix):
		return roleTagProps
	case strings.HasPrefix(colName, edgeColPrefix):
		return roleEdgeProps
	case strings.HasPrefix(colName, statsColPrefix):
		return roleStats
	case strings.HasPrefix(colName, exprColPrefix):
		return roleExpr
	default:
		return roleOther
	}
}

// parseColumn decodes one column name. Only tag and edge columns carry
// structured metadata; the remaining roles are recorded by position alone.
// A tag or edge name with exactly two tokens is valid and means the entity
// is present with no properties.
func parseColumn(colName string) (columnSchema, error) {
	role := classifyColumn(colName)
	if role != roleTagProps && role != roleEdgeProps {
		return columnSchema{role: role}, nil
	}
	pieces := strings.Split(colName, ":")
	if len(pieces) < 2 {
		return columnSchema{}, errors.NewMalformedColumnNameError(colName)
	}
	cs := columnSchema{role: role, props: pieces[2:]}
	name := pieces[1]
	if role == roleEdgeProps {
		if !strings.HasPrefix(name, "+") && !strings.HasPrefix(name, "-") {
			return columnSchema{}, errors.NewMalformedEdgeNameError(name)
		}
		cs.sign = name[0]
		name = name[1:]
	}
	cs.name = name
	return cs, nil
}

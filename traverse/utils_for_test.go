package traverse

import (
	"github.com/hopgraph/hopdb/common"
)

func testDataset(colNames []string, rows [][]interface{}) *common.Dataset {
	ds := &common.Dataset{ColNames: colNames}
	for _, row := range rows {
		cells := make([]common.Value, len(row))
		for i, cell := range row {
			cells[i] = common.ValueOf(cell)
		}
		ds.Rows = append(ds.Rows, cells)
	}
	return ds
}

func batchValue(datasets ...*common.Dataset) common.Value {
	list := &common.List{Values: make([]common.Value, len(datasets))}
	for i, ds := range datasets {
		list.Values[i] = common.NewDataset(ds)
	}
	return common.NewList(list)
}

var neighborsColNames = []string{
	"_vid",
	"_stats",
	"_tag:person:name:age",
	"_edge:+follow:_dst:_rank:since",
	"_expr",
}

// Two follow edges out of vertex "1"; vertex "2" has none so it contributes
// no steps.
func neighborsDataset() *common.Dataset {
	return testDataset(neighborsColNames, [][]interface{}{
		{"1", nil, []interface{}{"alice", 30}, []interface{}{
			[]interface{}{"bob", 3, 2020},
			[]interface{}{"carol", 0, 2018},
		}, nil},
		{"2", nil, []interface{}{"bob", 25}, []interface{}{}, nil},
	})
}

var propsColNames = []string{"_vid", "_stats", "_tag:person:name:age", "_expr"}

func propsDataset() *common.Dataset {
	return testDataset(propsColNames, [][]interface{}{
		{"1", nil, []interface{}{"alice", 30}, nil},
		{"2", nil, []interface{}{"bob", 25}, nil},
		{"3", nil, []interface{}{"carol", 27}, nil},
	})
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/alecthomas/kong"
	"muzzammil.xyz/jsonc"

	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/errors"
	"github.com/hopgraph/hopdb/log"
	"github.com/hopgraph/hopdb/traverse"
)

var arguments struct {
	Batch  string     `arg:"" help:"File holding a traversal result batch: a JSON (with comments) list of datasets." type:"existingfile"`
	Output string     `help:"What to print per decoded step." enum:"records,vertices,edges" default:"records"`
	Log    log.Config `embed:"" prefix:"log-"`
}

// dataset is the on-disk shape of one columnar batch.
type dataset struct {
	ColumnNames []string        `json:"column_names"`
	Rows        [][]interface{} `json:"rows"`
}

func main() {
	kctx := kong.Parse(&arguments)
	kctx.FatalIfErrorf(arguments.Log.Configure())
	kctx.FatalIfErrorf(run(arguments.Batch, arguments.Output))
}

func run(batchFile string, output string) error {
	value, err := loadBatch(batchFile)
	if err != nil {
		return err
	}
	iter, err := traverse.NewNeighborsIter(value)
	if err != nil {
		return err
	}
	for ; iter.Valid(); iter.Next() {
		switch output {
		case "vertices":
			fmt.Println(iter.GetVertex().String())
		case "edges":
			fmt.Println(iter.GetEdge().String())
		default:
			fmt.Printf("%s %s\n", iter.GetVertex().String(), iter.GetEdge().String())
		}
	}
	return nil
}

func loadBatch(batchFile string) (common.Value, error) {
	b, err := ioutil.ReadFile(batchFile)
	if err != nil {
		return common.Null, errors.WithStack(err)
	}
	// We use jsonc as it supports comments in JSON
	b = jsonc.ToJSON(b)
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	var datasets []dataset
	if err := decoder.Decode(&datasets); err != nil {
		return common.Null, errors.WithStack(err)
	}
	list := &common.List{Values: make([]common.Value, len(datasets))}
	for i, ds := range datasets {
		rows := make([][]common.Value, len(ds.Rows))
		for j, row := range ds.Rows {
			cells := make([]common.Value, len(row))
			for k, cell := range row {
				cells[k] = common.ValueOf(cell)
			}
			rows[j] = cells
		}
		list.Values[i] = common.NewDataset(&common.Dataset{ColNames: ds.ColumnNames, Rows: rows})
	}
	return common.NewList(list), nil
}

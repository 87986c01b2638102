package traverse

import (
	"github.com/hopgraph/hopdb/common"
	"github.com/hopgraph/hopdb/errors"
)

// Segment is one columnar result batch, one "get neighbors" response per
// traversal hop. It does not own the dataset; the caller must keep the
// dataset alive for as long as any iterator built over the segment is used.
type Segment struct {
	ID int
	ds *common.Dataset
}

func NewSegment(id int, ds *common.Dataset) *Segment {
	return &Segment{ID: id, ds: ds}
}

func (s *Segment) Dataset() *common.Dataset {
	return s.ds
}

func (s *Segment) RowCount() int {
	return len(s.ds.Rows)
}

// SegmentsFromValue converts a storage response into segments. The value
// must be a list whose elements are all datasets; anything else is a hard
// construction failure.
func SegmentsFromValue(value common.Value) ([]*Segment, error) {
	if !value.IsList() {
		return nil, errors.NewInvalidBatchShapeError("value type is not list, type: " + value.Kind().String())
	}
	list := value.GetList()
	segments := make([]*Segment, 0, len(list.Values))
	for i, val := range list.Values {
		if !val.IsDataset() {
			return nil, errors.NewInvalidBatchShapeError("there is a value in the list which is not a dataset")
		}
		segments = append(segments, NewSegment(i, val.GetDataset()))
	}
	return segments, nil
}

package dataset

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/shopspring/decimal"
)

// arrowBatchRows is the chunk size used when walking an Arrow table.
const arrowBatchRows = 4096

// FromArrowRecord copies an Arrow record batch into a Dataset.
// Column names come from the record schema; null cells become nil.
func FromArrowRecord(rec arrow.Record) (*Dataset, error) {
	d, err := newEmpty(fieldNames(rec.Schema()))
	if err != nil {
		return nil, err
	}
	appendRecord(d, rec)
	return d, nil
}

// FromArrowTable copies every chunk of an Arrow table into a Dataset.
func FromArrowTable(tbl arrow.Table) (*Dataset, error) {
	d, err := newEmpty(fieldNames(tbl.Schema()))
	if err != nil {
		return nil, err
	}

	tr := array.NewTableReader(tbl, arrowBatchRows)
	defer tr.Release()

	for tr.Next() {
		appendRecord(d, tr.Record())
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("read arrow table: %w", err)
	}

	return d, nil
}

// ReadParquet decodes a Parquet file into a Dataset.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker) (*Dataset, error) {
	mem := memory.NewGoAllocator()

	pf, err := file.NewParquetReader(r, file.WithReadProps(parquet.NewReaderProperties(mem)))
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("create arrow reader: %w", err)
	}

	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("read parquet data: %w", err)
	}
	defer tbl.Release()

	return FromArrowTable(tbl)
}

func fieldNames(schema *arrow.Schema) []string {
	names := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		names[i] = f.Name
	}
	return names
}

func appendRecord(d *Dataset, rec arrow.Record) {
	rows := int(rec.NumRows())
	for c, col := range rec.Columns() {
		for i := range rows {
			d.values[c] = append(d.values[c], arrowValue(col, i))
		}
	}
	d.rows += rows
}

// arrowValue returns the Go value of one cell, keeping numbers and times
// typed so FormatNumbers can still localize them.
func arrowValue(col arrow.Array, pos int) any {
	if col.IsNull(pos) {
		return nil
	}

	switch a := col.(type) {
	case *array.String:
		return a.Value(pos)
	case *array.LargeString:
		return a.Value(pos)
	case *array.Binary:
		return string(a.Value(pos))
	case *array.Boolean:
		return a.Value(pos)
	case *array.Int8:
		return a.Value(pos)
	case *array.Int16:
		return a.Value(pos)
	case *array.Int32:
		return a.Value(pos)
	case *array.Int64:
		return a.Value(pos)
	case *array.Uint8:
		return a.Value(pos)
	case *array.Uint16:
		return a.Value(pos)
	case *array.Uint32:
		return a.Value(pos)
	case *array.Uint64:
		return a.Value(pos)
	case *array.Float16:
		return a.Value(pos).Float32()
	case *array.Float32:
		return a.Value(pos)
	case *array.Float64:
		return a.Value(pos)
	case *array.Date32:
		return a.Value(pos).ToTime()
	case *array.Date64:
		return a.Value(pos).ToTime()
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(pos).ToTime(unit)
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return decimal.NewFromBigInt(a.Value(pos).BigInt(), -scale)
	default:
		return col.ValueStr(pos)
	}
}

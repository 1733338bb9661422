package dataset

import (
	"fmt"
)

// Null is the in-memory representation of a missing value. CSV files have no
// null literal, so an empty cell is treated as null throughout.
const Null = ""

// Column is an ordered sequence of string-encoded values sharing one name.
type Column struct {
	Name   string
	Values []string
}

// NonNull returns the column's values with nulls filtered out.
func (c *Column) NonNull() []string {
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if v != Null {
			out = append(out, v)
		}
	}
	return out
}

// Distinct returns the set of distinct non-null values.
func (c *Column) Distinct() map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range c.Values {
		if v != Null {
			set[v] = struct{}{}
		}
	}
	return set
}

// Dataset is a column-oriented in-memory table. Column order matches the
// source file so output files round-trip with the same header order.
type Dataset struct {
	Columns []*Column
	rows    int
}

// New builds a dataset from headers and row-major records. Every record must
// have exactly one value per header.
func New(headers []string, records [][]string) (*Dataset, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}
	ds := &Dataset{rows: len(records)}
	for _, h := range headers {
		ds.Columns = append(ds.Columns, &Column{
			Name:   h,
			Values: make([]string, 0, len(records)),
		})
	}
	for i, rec := range records {
		if len(rec) != len(headers) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i+1, len(rec), len(headers))
		}
		for j, v := range rec {
			ds.Columns[j].Values = append(ds.Columns[j].Values, v)
		}
	}
	return ds, nil
}

// Column returns the named column, or false if absent.
func (d *Dataset) Column(name string) (*Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the column names in file order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns the row count.
func (d *Dataset) Rows() int {
	return d.rows
}

// Clone returns a deep copy. Transforms operate on clones so the original
// dataset stays untouched for scoring.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{rows: d.rows}
	for _, c := range d.Columns {
		values := make([]string, len(c.Values))
		copy(values, c.Values)
		out.Columns = append(out.Columns, &Column{Name: c.Name, Values: values})
	}
	return out
}

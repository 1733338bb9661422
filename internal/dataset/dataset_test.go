package dataset

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := `name,age,city
alice,34,NY
bob,28,LA
carol,,SF
`
	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if ds.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", ds.Rows())
	}
	if got := ds.Names(); len(got) != 3 || got[0] != "name" || got[2] != "city" {
		t.Errorf("Names = %v, want [name age city]", got)
	}

	age, ok := ds.Column("age")
	if !ok {
		t.Fatal("column age not found")
	}
	if len(age.NonNull()) != 2 {
		t.Errorf("age non-null count = %d, want 2", len(age.NonNull()))
	}
	if _, ok := ds.Column("missing"); ok {
		t.Error("lookup of unknown column should fail")
	}
}

func TestReadCSVRaggedRow(t *testing.T) {
	input := "a,b\n1,2\n3\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	ds, err := New(
		[]string{"a", "b"},
		[][]string{{"1", "x"}, {"", "y"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("re-reading failed: %v", err)
	}
	if back.Rows() != ds.Rows() {
		t.Errorf("round trip rows = %d, want %d", back.Rows(), ds.Rows())
	}
	a, _ := back.Column("a")
	if a.Values[1] != Null {
		t.Errorf("null cell did not round trip, got %q", a.Values[1])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds, err := New([]string{"a"}, [][]string{{"1"}, {"2"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	clone := ds.Clone()
	clone.Columns[0].Values[0] = "changed"
	if ds.Columns[0].Values[0] != "1" {
		t.Error("mutating the clone changed the original")
	}
}

func TestNewRejectsMismatchedRow(t *testing.T) {
	if _, err := New([]string{"a", "b"}, [][]string{{"1"}}); err == nil {
		t.Fatal("expected error for row width mismatch")
	}
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for zero columns")
	}
}

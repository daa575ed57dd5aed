package sortable

import "facette.io/natsort"

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

// String orders strings lexicographically by byte value.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural orders strings the way a human would, treating runs of digits
// as numbers: "file2" sorts before "file10".
//
//	list, _ := sortedlist.New(4, sortedlist.SortableBehavior[sortable.Natural]())
//	list.Insert("v10")
//	list.Insert("v9")
//	first, _ := list.Min() // "v9"
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// natsort.Compare reports true for identical strings, so those are
// filtered first to keep LessThan strict.
func (n Natural) LessThan(other Natural) bool {
	return n != other && natsort.Compare(string(n), string(other))
}

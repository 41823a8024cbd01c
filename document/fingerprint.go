package document

import (
	"encoding/binary"
	"math"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest over a canonical encoding of the
// document. Structurally equal documents always hash the same, independent
// of attribute map iteration order.
func Fingerprint(d *Document) [32]byte {
	h, _ := blake2b.New256(nil)
	writeNodes(h, d.Children)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

type hashWriter interface {
	Write(p []byte) (int, error)
}

func writeNodes(w hashWriter, nodes []Node) {
	writeUvarint(w, uint64(len(nodes)))
	for _, n := range nodes {
		writeNode(w, n)
	}
}

func writeNode(w hashWriter, n Node) {
	switch n := n.(type) {
	case *Element:
		w.Write([]byte{'E'})
		writeString(w, n.Type)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeUvarint(w, uint64(len(keys)))
		for _, k := range keys {
			writeString(w, k)
			writeAttr(w, n.Attrs[k])
		}
		writeNodes(w, n.Children)
	case *Text:
		w.Write([]byte{'T'})
		writeString(w, n.Content)
		writeUvarint(w, uint64(len(n.Marks)))
		for _, m := range n.Marks {
			writeString(w, m)
		}
	}
}

func writeAttr(w hashWriter, v any) {
	// Attribute values come from JSON, so a string form is canonical enough.
	switch v := v.(type) {
	case string:
		w.Write([]byte{'s'})
		writeString(w, v)
	case float64:
		w.Write([]byte{'n'})
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		w.Write(buf[:])
	case bool:
		if v {
			w.Write([]byte{'1'})
		} else {
			w.Write([]byte{'0'})
		}
	case int:
		w.Write([]byte{'i'})
		writeUvarint(w, uint64(v))
	default:
		w.Write([]byte{'?'})
	}
}

func writeString(w hashWriter, s string) {
	writeUvarint(w, uint64(len(s)))
	w.Write([]byte(s))
}

func writeUvarint(w hashWriter, v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	w.Write(buf[:n])
}

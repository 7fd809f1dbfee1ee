package dwarf

import "fmt"

// Field is one decoded (attribute, value) pair on an Entry.
type Field struct {
	Attr Attr
	Val  Value
}

// smallFieldCount is the inline capacity Entry reserves before an
// attribute list spills to a heap-allocated slice (spec.md §9 "DIE
// small-buffer optimization"). Real-world DIEs (formal_parameter,
// member, base_type) typically carry 2-6 attributes; variable_type and
// subprogram entries with decl_file/decl_line/prototyped/external push
// toward the upper end of that range, which is what sizes this constant.
const smallFieldCount = 6

// Entry is one decoded debugging information entry (spec.md §3 "DIE").
// Offset identifies it uniquely within .debug_info and is what
// DW_FORM_ref* values point at.
type Entry struct {
	Offset   uint64
	Tag      Tag
	Children bool

	small [smallFieldCount]Field
	n     int
	extra []Field
}

func (e *Entry) appendField(f Field) {
	if e.n < smallFieldCount {
		e.small[e.n] = f
		e.n++
		return
	}
	e.extra = append(e.extra, f)
}

// Fields returns every decoded (attribute, value) pair in declaration
// order.
func (e *Entry) Fields() []Field {
	out := make([]Field, 0, e.n+len(e.extra))
	out = append(out, e.small[:e.n]...)
	out = append(out, e.extra...)
	return out
}

// Val looks up an attribute by key (spec.md §4.6 "attributes()/operator[]
// agreement" — Val and Fields must report the same data two different
// ways). Returns ErrKey when absent, matching the KeyError taxonomy entry
// in spec.md §7; this is deliberately an error return rather than the
// sentinel-value convention elf.Section uses for name/index lookups. The
// lookup is a linear scan over the entry's fields in declaration order.
func (e *Entry) Val(attr Attr) (Value, error) {
	for i := 0; i < e.n; i++ {
		if e.small[i].Attr == attr {
			return e.small[i].Val, nil
		}
	}
	for _, f := range e.extra {
		if f.Attr == attr {
			return f.Val, nil
		}
	}
	return Value{}, fmt.Errorf("%w: %s", ErrKey, attr)
}

// Reader walks the DIE tree of one compilation unit, decoding entries in
// pre-order (spec.md §4.6 "DIE engine"). A nil Entry with a nil error
// from Next marks a null entry: the end of one level's children.
type Reader struct {
	unit *Unit
	cur  *Cursor
	err  error
}

func newReader(u *Unit, pos uint64) *Reader {
	return &Reader{unit: u, cur: u.cursor(pos)}
}

// Err returns the first error encountered by Next/SkipChildren, if any.
func (r *Reader) Err() error { return r.err }

// Next decodes the entry at the cursor's current position and advances
// past it. It returns (nil, nil) both at a null entry (end of a sibling
// list) and once the reader has reached the unit's End; the two cases are
// not distinguished by the return values.
func (r *Reader) Next() (*Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	if uint64(r.cur.Position()) >= r.unit.End {
		return nil, nil
	}

	offset := uint64(r.cur.Position())
	code, err := r.cur.ULEB128()
	if err != nil {
		r.err = err
		return nil, err
	}
	if code == 0 {
		return nil, nil // null entry: caller is back up one level
	}

	table, err := r.unit.abbrevTable()
	if err != nil {
		r.err = err
		return nil, err
	}
	decl, ok := table.lookup(code)
	if !ok {
		err := fmt.Errorf("%w: abbreviation code %d undeclared", ErrFormat, code)
		r.err = err
		return nil, err
	}

	entry := &Entry{Offset: offset, Tag: decl.Tag, Children: decl.Children}
	for _, field := range decl.Fields {
		val, err := decodeValue(r.cur, field.Attr, field.Form, r.unit.Offset, r.unit.file.str)
		if err != nil {
			r.err = err
			return nil, err
		}
		entry.appendField(Field{Attr: field.Attr, Val: val})
	}
	return entry, nil
}

// SkipChildren advances the reader past every descendant of the entry
// just returned by Next, leaving it positioned at that entry's next
// sibling (spec.md §4.6). When entry carries DW_AT_sibling this is a
// single seek; otherwise the reader must decode and discard every
// descendant entry one at a time, which is the documented O(n²)
// worst-case traversal spec.md §9 calls out for sibling-hint-free
// producers (each level with k missing-sibling children performs its own
// O(k) linear skip, so a bushy tree of uniform fan-out f and depth d
// costs O(f^d) total rather than the O(n) a sibling pointer would give).
func (r *Reader) SkipChildren(entry *Entry) error {
	if !entry.Children {
		return nil
	}
	if sib, err := entry.Val(AttrSibling); err == nil {
		off, err := sib.Ref()
		if err == nil {
			r.cur.SetPosition(int(off))
			return nil
		}
	}

	depth := 1
	for depth > 0 {
		child, err := r.Next()
		if err != nil {
			return err
		}
		if child == nil {
			depth--
			continue
		}
		if child.Children {
			depth++
		}
	}
	return nil
}

// Children iterates the direct children of entry, calling visit for
// each. visit may itself walk the child's subtree (for example by calling
// Children on it): the reader is put back just after the child before its
// descendants are skipped. Iteration stops when visit returns false, and
// stops and returns visit's error if it returns one.
func (r *Reader) Children(entry *Entry, visit func(*Entry) (bool, error)) error {
	if !entry.Children {
		return nil
	}
	for {
		child, err := r.Next()
		if err != nil {
			return err
		}
		if child == nil {
			return nil
		}
		after := r.cur.Position()
		cont, err := visit(child)
		if err != nil {
			return err
		}
		if child.Children {
			r.cur.SetPosition(after)
			if err := r.SkipChildren(child); err != nil {
				return err
			}
		}
		if !cont {
			return r.SkipChildren(entry)
		}
	}
}

package dwarf

import "fmt"

// Value is one decoded attribute value, tagged with the semantic Class
// its Form maps to (spec.md §4.7 "Value decoder", §4.8 "form → type
// table"). Exactly one of the typed fields below is meaningful, selected
// by class; callers use the Uint64/Int64/String/Bytes/Bool/Ref accessors
// rather than touching fields directly, so a future class split doesn't
// break call sites.
type Value struct {
	Form  Form
	class Class

	u   uint64
	i   int64
	s   string
	b   []byte
	ref uint64 // byte offset into .debug_info; CU-relative forms are already rebased to a section offset
}

// Class reports the semantic category this value decoded to.
func (v Value) Class() Class { return v.class }

// Uint64 returns the value as an unsigned integer. Valid for
// ClassConstant, ClassAddress, ClassFlag (0/1), and the sec_offset-
// derived pointer classes (ClassRangeListPtr, ClassLinePtr,
// ClassLocListPtr, ClassMacPtr).
func (v Value) Uint64() (uint64, error) {
	switch v.class {
	case ClassConstant, ClassAddress, ClassRangeListPtr, ClassLinePtr, ClassLocListPtr, ClassMacPtr:
		return v.u, nil
	case ClassFlag:
		if v.u != 0 {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s is not an integer-valued class", ErrValueType, v.class)
	}
}

// Int64 returns the value as a signed integer. Only DW_FORM_sdata
// decodes to this; other constant forms are unsigned (spec.md §4.8).
func (v Value) Int64() (int64, error) {
	if v.Form != FormSdata {
		return 0, fmt.Errorf("%w: form %s has no signed representation", ErrValueType, v.Form)
	}
	return v.i, nil
}

// String returns the value as a string. Valid for ClassString.
func (v Value) String() (string, error) {
	if v.class != ClassString {
		return "", fmt.Errorf("%w: %s is not a string-valued class", ErrValueType, v.class)
	}
	return v.s, nil
}

// Bytes returns the value as raw bytes. Valid for ClassBlock and
// ClassExprLoc (the latter is a block holding a location expression this
// library does not evaluate, spec.md §1 non-goals).
func (v Value) Bytes() ([]byte, error) {
	if v.class != ClassBlock && v.class != ClassExprLoc {
		return nil, fmt.Errorf("%w: %s is not a block-valued class", ErrValueType, v.class)
	}
	return v.b, nil
}

// Bool reports a flag value. Valid for ClassFlag.
func (v Value) Bool() (bool, error) {
	if v.class != ClassFlag {
		return false, fmt.Errorf("%w: %s is not a flag", ErrValueType, v.class)
	}
	return v.u != 0, nil
}

// Ref returns the byte offset into .debug_info this value references.
// For DW_FORM_ref1/2/4/8/udata the offset is CU-relative on disk and
// decodeValue has already rebased it to a whole-section offset; for
// DW_FORM_ref_addr it is already section-absolute. DW_FORM_ref_sig8
// (type-unit signature references) is out of scope (spec.md §1) and
// reports ErrNotImplemented.
func (v Value) Ref() (uint64, error) {
	if v.Form == FormRefSig8 {
		return 0, fmt.Errorf("%w: DW_FORM_ref_sig8 cross-unit resolution", ErrNotImplemented)
	}
	if v.class != ClassReference {
		return 0, fmt.Errorf("%w: %s is not a reference-valued class", ErrValueType, v.class)
	}
	return v.ref, nil
}

// computeClass resolves a (attribute, form) pair to its semantic type
// (spec.md §4.8 "form → type table"). Every form's class is fixed except
// DW_FORM_sec_offset, whose class depends on which attribute carries it;
// an attribute outside that table carrying sec_offset is malformed.
func computeClass(attr Attr, form Form) (Class, error) {
	if form != FormSecOffset {
		return form.Class(), nil
	}
	switch attr {
	case AttrStmtList:
		return ClassLinePtr, nil
	case AttrLocation, AttrStringLength, AttrReturnAddr, AttrDataMemberLoc,
		AttrFrameBase, AttrSegment, AttrStaticLink, AttrUseLocation, AttrVtableElemLoc:
		return ClassLocListPtr, nil
	case AttrMacroInfo:
		return ClassMacPtr, nil
	case AttrStartScope, AttrRanges:
		return ClassRangeListPtr, nil
	default:
		return ClassUnknown, fmt.Errorf("%w: unexpected DW_FORM_sec_offset on attribute %s", ErrFormat, attr)
	}
}

// decodeValue reads one attribute's value off c per its form, rebasing
// CU-relative reference forms to whole-section offsets using cuOffset
// (the enclosing compilation unit's starting offset in .debug_info), and
// resolving DW_FORM_strp against str (the .debug_str slice). attr is the
// declaring attribute, needed to resolve sec_offset's computed type
// (spec.md §4.8).
func decodeValue(c *Cursor, attr Attr, form Form, cuOffset uint64, str sectionSlice) (Value, error) {
	if form == FormIndirect {
		raw, err := c.ULEB128()
		if err != nil {
			return Value{}, err
		}
		return decodeValue(c, attr, Form(raw), cuOffset, str)
	}

	class, err := computeClass(attr, form)
	if err != nil {
		return Value{}, err
	}
	v := Value{Form: form, class: class}
	switch form {
	case FormAddr:
		u, err := c.Address()
		if err != nil {
			return Value{}, err
		}
		v.u = u

	case FormBlock1:
		n, err := Fixed[uint8](c)
		if err != nil {
			return Value{}, err
		}
		b, err := c.Bytes(int(n))
		if err != nil {
			return Value{}, err
		}
		v.b = b
	case FormBlock2:
		n, err := Fixed[uint16](c)
		if err != nil {
			return Value{}, err
		}
		b, err := c.Bytes(int(n))
		if err != nil {
			return Value{}, err
		}
		v.b = b
	case FormBlock4:
		n, err := Fixed[uint32](c)
		if err != nil {
			return Value{}, err
		}
		b, err := c.Bytes(int(n))
		if err != nil {
			return Value{}, err
		}
		v.b = b
	case FormBlock, FormExprloc:
		n, err := c.ULEB128()
		if err != nil {
			return Value{}, err
		}
		b, err := c.Bytes(int(n))
		if err != nil {
			return Value{}, err
		}
		v.b = b

	case FormData1:
		u, err := Fixed[uint8](c)
		if err != nil {
			return Value{}, err
		}
		v.u = uint64(u)
	case FormData2:
		u, err := Fixed[uint16](c)
		if err != nil {
			return Value{}, err
		}
		v.u = uint64(u)
	case FormData4:
		u, err := Fixed[uint32](c)
		if err != nil {
			return Value{}, err
		}
		v.u = uint64(u)
	case FormSecOffset:
		u, err := c.Offset()
		if err != nil {
			return Value{}, err
		}
		v.u = u
	case FormData8:
		u, err := Fixed[uint64](c)
		if err != nil {
			return Value{}, err
		}
		v.u = u
	case FormSdata:
		i, err := c.SLEB128()
		if err != nil {
			return Value{}, err
		}
		v.i = i
		v.u = uint64(i)
	case FormUdata:
		u, err := c.ULEB128()
		if err != nil {
			return Value{}, err
		}
		v.u = u

	case FormFlag:
		u, err := Fixed[uint8](c)
		if err != nil {
			return Value{}, err
		}
		v.u = uint64(u)
	case FormFlagPresent:
		v.u = 1

	case FormString:
		s, err := c.String()
		if err != nil {
			return Value{}, err
		}
		v.s = s
	case FormStrp:
		off, err := c.Offset()
		if err != nil {
			return Value{}, err
		}
		sc, err := str.cursorAt(off)
		if err != nil {
			return Value{}, err
		}
		s, err := sc.String()
		if err != nil {
			return Value{}, err
		}
		v.s = s

	case FormRef1:
		u, err := Fixed[uint8](c)
		if err != nil {
			return Value{}, err
		}
		v.ref = cuOffset + uint64(u)
	case FormRef2:
		u, err := Fixed[uint16](c)
		if err != nil {
			return Value{}, err
		}
		v.ref = cuOffset + uint64(u)
	case FormRef4:
		u, err := Fixed[uint32](c)
		if err != nil {
			return Value{}, err
		}
		v.ref = cuOffset + uint64(u)
	case FormRef8:
		u, err := Fixed[uint64](c)
		if err != nil {
			return Value{}, err
		}
		v.ref = cuOffset + u
	case FormRefUdata:
		u, err := c.ULEB128()
		if err != nil {
			return Value{}, err
		}
		v.ref = cuOffset + u
	case FormRefAddr:
		off, err := c.Offset()
		if err != nil {
			return Value{}, err
		}
		v.ref = off
	case FormRefSig8:
		u, err := Fixed[uint64](c)
		if err != nil {
			return Value{}, err
		}
		v.ref = u

	default:
		return Value{}, fmt.Errorf("%w: form %s", ErrNotImplemented, form)
	}
	return v, nil
}

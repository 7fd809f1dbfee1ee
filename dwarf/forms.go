package dwarf

import "fmt"

// Form identifies the on-disk encoding of an attribute's value (DW_FORM_*,
// Table 21), grounded on the same linker constant table as Tag/Attr.
type Form uint32

const (
	FormAddr     Form = 0x01
	FormBlock2   Form = 0x03
	FormBlock4   Form = 0x04
	FormData2    Form = 0x05
	FormData4    Form = 0x06
	FormData8    Form = 0x07
	FormString   Form = 0x08
	FormBlock    Form = 0x09
	FormBlock1   Form = 0x0a
	FormData1    Form = 0x0b
	FormFlag     Form = 0x0c
	FormSdata    Form = 0x0d
	FormStrp     Form = 0x0e
	FormUdata    Form = 0x0f
	FormRefAddr  Form = 0x10
	FormRef1     Form = 0x11
	FormRef2     Form = 0x12
	FormRef4     Form = 0x13
	FormRef8     Form = 0x14
	FormRefUdata Form = 0x15
	FormIndirect Form = 0x16
	// DWARF4 additions; recognized so a CU that mixes one DWARF4 form
	// into otherwise DWARF2/3 data doesn't hard-fail decode, per spec.md
	// §1 scope note ("DWARF v2-4... DWARF5 out of scope").
	FormSecOffset   Form = 0x17
	FormExprloc     Form = 0x18
	FormFlagPresent Form = 0x19
	FormRefSig8     Form = 0x20
)

var formNames = map[Form]string{
	FormAddr: "addr", FormBlock2: "block2", FormBlock4: "block4",
	FormData2: "data2", FormData4: "data4", FormData8: "data8",
	FormString: "string", FormBlock: "block", FormBlock1: "block1",
	FormData1: "data1", FormFlag: "flag", FormSdata: "sdata",
	FormStrp: "strp", FormUdata: "udata", FormRefAddr: "ref_addr",
	FormRef1: "ref1", FormRef2: "ref2", FormRef4: "ref4", FormRef8: "ref8",
	FormRefUdata: "ref_udata", FormIndirect: "indirect",
	FormSecOffset: "sec_offset", FormExprloc: "exprloc",
	FormFlagPresent: "flag_present", FormRefSig8: "ref_sig8",
}

func (f Form) String() string {
	if n, ok := formNames[f]; ok {
		return "DW_FORM_" + n
	}
	return fmt.Sprintf("DW_FORM_unknown(0x%x)", uint32(f))
}

// Class is the semantic category a Form decodes to (spec.md §4.7 "form →
// type table"), independent of encoding width — e.g. data1/data2/data4/
// data8/sdata/udata are all ClassConstant.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassAddress
	ClassBlock
	ClassConstant
	ClassFlag
	ClassReference
	ClassString
	ClassExprLoc
	ClassRangeListPtr
	ClassLinePtr
	ClassLocListPtr
	ClassMacPtr
	ClassIndirect
)

func (f Form) Class() Class {
	switch f {
	case FormAddr:
		return ClassAddress
	case FormBlock, FormBlock1, FormBlock2, FormBlock4:
		return ClassBlock
	case FormData1, FormData2, FormData4, FormData8, FormSdata, FormUdata:
		return ClassConstant
	case FormFlag, FormFlagPresent:
		return ClassFlag
	case FormRef1, FormRef2, FormRef4, FormRef8, FormRefUdata, FormRefAddr, FormRefSig8:
		return ClassReference
	case FormString, FormStrp:
		return ClassString
	case FormExprloc:
		return ClassExprLoc
	case FormSecOffset:
		// sec_offset's type depends on the carrying attribute (spec.md
		// §4.8); computeClass resolves it, Form alone cannot.
		return ClassUnknown
	case FormIndirect:
		return ClassIndirect
	default:
		return ClassUnknown
	}
}

// SkipForm advances the cursor past one attribute value of the given
// form without decoding it. Nothing in this package calls it:
// Reader.SkipChildren decodes each skipped entry in full through Next.
func (c *Cursor) SkipForm(form Form) error {
	switch form {
	case FormAddr:
		_, err := c.Address()
		return err
	case FormBlock1:
		n, err := Fixed[uint8](c)
		if err != nil {
			return err
		}
		_, err = c.Bytes(int(n))
		return err
	case FormBlock2:
		n, err := Fixed[uint16](c)
		if err != nil {
			return err
		}
		_, err = c.Bytes(int(n))
		return err
	case FormBlock4:
		n, err := Fixed[uint32](c)
		if err != nil {
			return err
		}
		_, err = c.Bytes(int(n))
		return err
	case FormBlock, FormExprloc:
		n, err := c.ULEB128()
		if err != nil {
			return err
		}
		_, err = c.Bytes(int(n))
		return err
	case FormData1, FormRef1, FormFlag:
		_, err := c.Bytes(1)
		return err
	case FormData2, FormRef2:
		_, err := c.Bytes(2)
		return err
	case FormData4, FormRef4:
		_, err := c.Bytes(4)
		return err
	case FormData8, FormRef8, FormRefSig8:
		_, err := c.Bytes(8)
		return err
	case FormSecOffset, FormStrp, FormRefAddr:
		_, err := c.Offset()
		return err
	case FormSdata:
		_, err := c.SLEB128()
		return err
	case FormUdata, FormRefUdata:
		_, err := c.ULEB128()
		return err
	case FormString:
		_, err := c.String()
		return err
	case FormFlagPresent:
		return nil
	case FormIndirect:
		raw, err := c.ULEB128()
		if err != nil {
			return err
		}
		return c.SkipForm(Form(raw))
	default:
		return fmt.Errorf("%w: form %s", ErrNotImplemented, form)
	}
}

package asm374

import (
	"strconv"
	"strings"

	. "github.com/pgaskin/ASM374/internal/flags"
)

type namedField struct {
	name string
	f    field
}

// Get the fields of an encoding, most significant first. Bits outside these fields are reserved.
func layoutFields(id Encoding) []namedField {
	fs := []namedField{{"Op", fieldOp}}
	if !id.IsValid() {
		return fs
	}
	e := id.enc()
	if strings.IndexByte(e.argp, 'a') >= 0 {
		fs = append(fs, namedField{"Ra", fieldRa})
	}
	switch {
	case e.hasFlag(COND):
		fs = append(fs, namedField{"C2", fieldC2})
	case e.hasFlag(RB_ZERO) || strings.ContainsAny(e.argp, "bm"):
		fs = append(fs, namedField{"Rb", fieldRb})
	}
	if strings.IndexByte(e.argp, 'c') >= 0 {
		fs = append(fs, namedField{"Rc", fieldRc})
	}
	if strings.ContainsAny(e.argp, "im") {
		fs = append(fs, namedField{"C", fieldC})
	}
	return fs
}

// Explain the encoding of an instruction word. The first line shows the bits of each field
// ("Op:00011|Ra:0001|..."), with reserved bits as "Unk:???"; the second line shows the format and the
// decoded value of each field ("R Op=add Ra=r1 ...").
//
// Like Disassemble, ExplainEncoding fails open: the layout is always returned, along with the
// result of Check.
func ExplainEncoding(w Word) (string, error) {
	inst, _ := Decode(w)
	fs := layoutFields(inst.Encoding)

	var b strings.Builder
	for bit, i := 31, 0; bit >= 0; {
		if b.Len() != 0 {
			b.WriteByte('|')
		}
		if i < len(fs) && fs[i].f.top() == bit {
			b.WriteString(fs[i].name)
			b.WriteByte(':')
			b.WriteString(fs[i].f.bitString(uint32(w)))
			bit = int(fs[i].f.shift) - 1
			i++
			continue
		}
		end := -1
		if i < len(fs) {
			end = fs[i].f.top()
		}
		// reserved bits are unknown to the decoder; Check reports them
		b.WriteString("Unk:")
		b.WriteString(strings.Repeat("?", bit-end))
		bit = end
	}

	b.WriteByte('\n')
	b.WriteString(inst.Inst.Format().String())
	for _, nf := range fs {
		b.WriteByte(' ')
		b.WriteString(nf.name)
		b.WriteByte('=')
		v := nf.f.get(uint32(w))
		switch nf.name {
		case "Op":
			if inst.Inst.IsValid() {
				b.WriteString(inst.Inst.Name())
			} else {
				b.WriteString(strconv.Itoa(int(v)))
			}
		case "Ra", "Rb", "Rc":
			b.WriteString(Reg(v).String())
		case "C2":
			b.WriteString(Cond(v).String())
		case "C":
			b.WriteString(strconv.Itoa(int(signExtend(v, fieldC.width))))
		}
	}
	return b.String(), Check(w)
}

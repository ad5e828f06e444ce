// package asm374 assembles, disassembles, checks and explains single instructions of the ELEC374
// W23 CPU, a 32-bit load/store machine with 16 registers and 28 instructions.
//
// usage example:
//
//	package example
//
//	import (
//		"fmt"
//
//		asm "github.com/pgaskin/ASM374"
//	)
//
//	func Example() error {
//		w, err := asm.Assemble("ldi r2, 0x39(r1)")
//		if err != nil {
//			return err // a *asm.Diagnostic, e.g. "column 9: constant C = ... out of range"
//		}
//		fmt.Println(w) // 09080039
//
//		text, err := asm.Disassemble(w)
//		if err != nil {
//			return err
//		}
//		fmt.Println(text) // ldi r2, 57(r1)
//
//		if err := asm.Check(0x18918001); err != nil {
//			fmt.Println(err) // reserved bits 0x00000001 are set in add Ra, Rb, Rc (must be zero)
//		}
//
//		prose, _ := asm.Explain("brnz r3, -4")
//		fmt.Println(prose) // brnz r3, -4: if r3 is non-zero, branches to ...
//		return nil
//	}
//
// Every operation works on exactly one instruction and keeps no state between calls, so all of
// them are safe for concurrent use. Errors are always *Diagnostic values wrapping one of the
// Err* kinds.
//
// Instruction words are laid out as follows (bit 31 is the most significant):
//
//	Op 31..27  opcode
//	Ra 26..23  register
//	Rb 22..19  register (C2, the branch condition, in branches)
//	Rc 18..15  register
//	C  17..0   18-bit two's complement constant
package asm374

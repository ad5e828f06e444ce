// package disasm provides disassembly for streams of ASM374 instruction words, such as memory
// images loaded into the CPU.
//
// example usage:
//
//	package example
//
//	import (
//		"fmt"
//
//		asm "github.com/pgaskin/ASM374"
//		"github.com/pgaskin/ASM374/disasm"
//	)
//
//	func Listing() error {
//		var code []byte
//		for _, text := range []string{"ldi r2, 0x39(r1)", "brnz r2, -1", "halt"} {
//			w, err := asm.Assemble(text)
//			if err != nil {
//				return err
//			}
//			code = disasm.Append(code, w)
//		}
//		code = append(code, make([]byte, 64)...) // unused memory
//
//		return disasm.Words(code, func(e disasm.Entry) bool {
//			fmt.Printf("%04x  %v  %s\n", e.Offset, e.Word, e.Text)
//			return true
//		})
//		// Outputs:
//		//
//		// 	0000  09080039  ldi r2, 57(r1)
//		// 	0004  990BFFFF  brnz r2, -1
//		// 	0008  D8000000  halt
//	}
package disasm

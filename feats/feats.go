// package feats names the instruction groups of the ASM374 CPU.
//
// The groups follow the order in which the datapath is usually brought up (ALU first, then
// memory, branches, multiply/divide, I/O), so an Assembler can be restricted to the
// instructions a partially built CPU actually implements.
package feats

import "strings"

type Feature uint32

// Instruction groups
const (
	IMPLICIT Feature = 0
	ALU      Feature = 1 << iota
	MULDIV
	MEMORY
	BRANCH
	IO
	CONTROL
)

const AllFeatures Feature = ALU | MULDIV | MEMORY | BRANCH | IO | CONTROL

// Get the name of a single group.
func FeatName(f Feature) string { return featNames[f] }

// Get the names of all groups set in f, in declaration order.
func (f Feature) Names() []string {
	var names []string
	for _, g := range featOrder {
		if f&g != 0 {
			names = append(names, FeatName(g))
		}
	}
	return names
}

func (f Feature) String() string {
	if f == IMPLICIT {
		return FeatName(IMPLICIT)
	}
	return strings.Join(f.Names(), "|")
}

// Lookup a group by name (case-insensitive).
func Lookup(name string) (Feature, bool) {
	for _, g := range featOrder {
		if strings.EqualFold(FeatName(g), name) {
			return g, true
		}
	}
	return IMPLICIT, false
}

var featOrder = [...]Feature{ALU, MULDIV, MEMORY, BRANCH, IO, CONTROL}

var featNames = map[Feature]string{
	IMPLICIT: "IMPLICIT",
	ALU:      "ALU",
	MULDIV:   "MULDIV",
	MEMORY:   "MEMORY",
	BRANCH:   "BRANCH",
	IO:       "IO",
	CONTROL:  "CONTROL",
}

// Package cnf implements the clause and literal model shared by the proof
// tracer and the subsumption engine: identity, polarity, and the 64-bit
// clause signature used as a cheap subsumption prefilter.
package cnf

import "fmt"

// Variable is a 0-indexed Boolean variable ordinal.
type Variable int32

// Literal is a signed reference to a Variable: a (variable ordinal, polarity)
// pair. The zero value is the positive literal of variable 0.
type Literal struct {
	v   Variable
	neg bool
}

// NewLiteral builds the literal for variable v with the given polarity.
func NewLiteral(v Variable, positive bool) Literal {
	return Literal{v: v, neg: !positive}
}

// Var returns the variable this literal refers to.
func (l Literal) Var() Variable { return l.v }

// IsNegation reports whether this literal is the negative occurrence of its
// variable.
func (l Literal) IsNegation() bool { return l.neg }

// Negate returns the literal with the opposite polarity for the same
// variable.
func (l Literal) Negate() Literal {
	return Literal{v: l.v, neg: !l.neg}
}

// Signed returns the external proof encoding of this literal:
// (ord+1) * (positive ? +1 : -1). Variables are 0-indexed internally but the
// wire format is 1-indexed, matching every DIMACS-family proof format.
func (l Literal) Signed() int {
	n := int(l.v) + 1
	if l.neg {
		return -n
	}
	return n
}

// LiteralFromSigned inverts Signed: it recovers the literal encoded by a
// nonzero signed integer in the external (ord+1)*sign convention.
func LiteralFromSigned(signed int) Literal {
	if signed == 0 {
		panic("cnf: 0 does not encode a literal")
	}
	if signed < 0 {
		return Literal{v: Variable(-signed - 1), neg: true}
	}
	return Literal{v: Variable(signed - 1), neg: false}
}

func (l Literal) String() string {
	if l.neg {
		return fmt.Sprintf("-%d", l.v)
	}
	return fmt.Sprintf("%d", l.v)
}

// hash64 mixes a literal into a 64-bit value well distributed across the low
// 6 bits, which is all Signature consumes. Splitmix64's finalizer, applied to
// the literal's signed encoding.
func hash64(l Literal) uint64 {
	x := uint64(int64(l.Signed()))
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

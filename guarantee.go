// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr

import "strings"

// Guarantee is a set of no-panic claims made by an iterable about itself
// and the iterators it produces.
//
// Go cannot query at compile time whether an operation may panic, so the
// claims are declared explicitly and propagated by the adapter. A missing
// flag never means the operation panics, only that nothing is promised.
type Guarantee uint8

const (
	// NoPanicConstruct: taking ownership of, or building, the iterable never panics.
	NoPanicConstruct Guarantee = 1 << iota
	// NoPanicBegin: Begin never panics.
	NoPanicBegin
	// NoPanicEnd: End never panics.
	NoPanicEnd
	// NoPanicNext: Iterator.Next never panics on a valid cursor.
	NoPanicNext
	// NoPanicValue: Iterator.Value never panics on a valid cursor.
	NoPanicValue
	// NoPanicEqual: Iterator.Equal never panics.
	NoPanicEqual

	// NoPanicAll is the conjunction of every claim.
	NoPanicAll = NoPanicConstruct | NoPanicBegin | NoPanicEnd |
		NoPanicNext | NoPanicValue | NoPanicEqual

	// iteratorGuarantees are the claims that concern a cursor.
	iteratorGuarantees = NoPanicNext | NoPanicValue | NoPanicEqual
)

// Guaranteer is implemented by iterables and iterators that declare
// their no-panic claims.
type Guaranteer interface {
	Guarantees() Guarantee
}

// GuaranteesOf returns the claims of v, or no claims when v does not
// implement [Guaranteer].
func GuaranteesOf(v any) Guarantee {
	if g, ok := v.(Guaranteer); ok {
		return g.Guarantees()
	}
	return 0
}

// Has reports whether every claim in f is present in g.
func (g Guarantee) Has(f Guarantee) bool {
	return g&f == f
}

var guaranteeNames = [...]string{
	"construct",
	"begin",
	"end",
	"next",
	"value",
	"equal",
}

// String returns the claims as a "|"-separated list, or "none".
func (g Guarantee) String() string {
	if g == 0 {
		return "none"
	}
	var b strings.Builder
	for i, name := range guaranteeNames {
		if g&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	return b.String()
}

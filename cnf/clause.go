package cnf

import "sync/atomic"

// ClauseID is a process-unique clause identity, monotonically assigned at
// construction. It is the sole key the proof tracer uses to track clauses;
// the literals a Clause holds may change (e.g. minimization), but its id is
// stable across mutation. Two clauses built from identical literals get
// distinct ids.
type ClauseID int64

var nextClauseID atomic.Int64

func allocClauseID() ClauseID {
	return ClauseID(nextClauseID.Add(1))
}

// Clause is an ordered sequence of literals interpreted as their
// disjunction, carrying a stable identity.
type Clause struct {
	id  ClauseID
	lit []Literal
}

// NewClause allocates a fresh id and builds a clause from lits. The slice is
// copied so callers may reuse their backing array.
func NewClause(lits ...Literal) *Clause {
	return &Clause{
		id:  allocClauseID(),
		lit: append([]Literal(nil), lits...),
	}
}

// ID returns this clause's stable, process-unique identity.
func (c *Clause) ID() ClauseID { return c.id }

// Literals returns the clause's current literals. Callers must not retain or
// mutate the returned slice across a call to SetLiterals or Clear.
func (c *Clause) Literals() []Literal { return c.lit }

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int { return len(c.lit) }

// IsEmpty reports whether the clause has no literals, either because it was
// constructed empty (the refutation's final clause) or because subsumption
// cleared it.
func (c *Clause) IsEmpty() bool { return len(c.lit) == 0 }

// SetLiterals replaces the clause's literals in place, preserving its id.
// Used by minimization (self-subsuming resolution), which shrinks a clause
// without changing its identity.
func (c *Clause) SetLiterals(lits []Literal) { c.lit = lits }

// Clear empties the clause's literals, marking it subsumed. The clause keeps
// its id (the tracer may still need to look it up) until the database packs
// it away.
func (c *Clause) Clear() { c.lit = nil }

// RemoveAt removes the literal at index i by swapping it with the last
// literal and shrinking the slice by one. O(1), but does not preserve order.
func (c *Clause) RemoveAt(i int) {
	last := len(c.lit) - 1
	c.lit[i] = c.lit[last]
	c.lit = c.lit[:last]
}

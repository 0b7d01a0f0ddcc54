package cnf

// Database is the clause-storage contract the proof tracer and subsumption
// engine are written against. Asserted clauses are iterated forward by
// begin_proof; learned clauses are iterated forward by subsumption and in
// reverse by end_proof. The database is expected to compact away clauses emptied by
// subsumption (or minimization down to zero literals) on its own schedule;
// it is not the database's job to notify the tracer of such removals — the
// caller that removed the clause (the subsumption engine) does that.
type Database interface {
	// Asserted returns the original (asserted or theory-introduced) clauses,
	// in the order they were added.
	Asserted() []*Clause
	// Learned returns the currently-registered learned clauses, in the order
	// they were learned.
	Learned() []*Clause
	// AddLearned registers a newly learned clause.
	AddLearned(c *Clause)
	// Compact physically drops any learned clause that IsEmpty(), preserving
	// the relative order of the survivors.
	Compact()
}

// MemoryDatabase is the in-memory Database used by the demo search engine
// and by tests; it has no persistence or concurrency story since the proof
// core is single-threaded and cooperative.
type MemoryDatabase struct {
	asserted []*Clause
	learned  []*Clause
}

// NewMemoryDatabase returns an empty database.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{}
}

// AddAsserted registers c as an asserted (original) clause.
func (d *MemoryDatabase) AddAsserted(c *Clause) {
	d.asserted = append(d.asserted, c)
}

// AddLearned registers c as a learned clause.
func (d *MemoryDatabase) AddLearned(c *Clause) {
	d.learned = append(d.learned, c)
}

// Asserted implements Database.
func (d *MemoryDatabase) Asserted() []*Clause { return d.asserted }

// Learned implements Database.
func (d *MemoryDatabase) Learned() []*Clause { return d.learned }

// Compact implements Database.
func (d *MemoryDatabase) Compact() {
	kept := d.learned[:0]
	for _, c := range d.learned {
		if !c.IsEmpty() {
			kept = append(kept, c)
		}
	}
	d.learned = kept
}

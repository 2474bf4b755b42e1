package terms

// Generator accumulates records of HGNC entries in the order entries are
// added.
type Generator struct {
	species string
	records []Record
	rows    int
	skipped int
}

// NewGenerator creates a Generator that assigns species to every record.
func NewGenerator(species string) *Generator {
	return &Generator{species: species}
}

// Add converts an entry to records. Entries without exactly one
// identifier are counted as skipped, and Add returns false for them.
func (g *Generator) Add(e Entry) bool {
	g.rows++
	recs, ok := e.Records(g.species)
	if !ok {
		g.skipped++
		return false
	}
	g.records = append(g.records, recs...)
	return true
}

// Records returns all records generated so far.
func (g *Generator) Records() []Record {
	return g.records
}

// Rows returns the number of entries given to Add.
func (g *Generator) Rows() int {
	return g.rows
}

// Skipped returns the number of entries that produced no records.
func (g *Generator) Skipped() int {
	return g.skipped
}

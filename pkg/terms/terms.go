// Package terms reshapes HGNC entries into synonym records and prepares
// them for the knowledge base.
//
// The package is pure: it does not read or write files. Readers and
// writers of the tab-separated files live in internal/iotsv.
package terms

import (
	"fmt"
	"strings"
)

// EntryFieldsNum is the number of columns in a row of the entries file.
const EntryFieldsNum = 7

// listSep separates values inside a multi-value field of the entries file.
const listSep = ", "

// Entry is one data row of the HGNC entries file.
type Entry struct {
	HGNCID      string
	Symbol      string
	ProteinName string
	Status      string
	Synonyms    string
	PrevSymbols string
	// Identifiers is a comma-separated list of UniProt identifiers.
	Identifiers string
}

// Record is a single synonym to identifier mapping of the knowledge base.
type Record struct {
	Synonym    string
	Identifier string
	Species    string
}

// Pair is the part of a Record that decides redundancy.
type Pair struct {
	Synonym    string
	Identifier string
}

// Pair returns the synonym and identifier of the record.
func (r Record) Pair() Pair {
	return Pair{Synonym: r.Synonym, Identifier: r.Identifier}
}

// Fields returns the record as a row of the output file.
func (r Record) Fields() []string {
	return []string{r.Synonym, r.Identifier, r.Species}
}

// ParseEntry converts a row of the entries file to an Entry.
// The row must have exactly EntryFieldsNum fields.
func ParseEntry(fields []string) (Entry, error) {
	var res Entry
	if len(fields) != EntryFieldsNum {
		return res, fmt.Errorf(
			"expected %d fields, got %d", EntryFieldsNum, len(fields),
		)
	}
	res = Entry{
		HGNCID:      fields[0],
		Symbol:      fields[1],
		ProteinName: fields[2],
		Status:      fields[3],
		Synonyms:    fields[4],
		PrevSymbols: fields[5],
		Identifiers: fields[6],
	}
	return res, nil
}

// SplitList splits a multi-value field and trims every value.
// An empty field gives an empty list.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.Split(s, listSep)
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

// Identifier returns the only identifier of the entry. The second value
// is false if the entry maps to zero or several identifiers.
func (e Entry) Identifier() (string, bool) {
	ids := SplitList(e.Identifiers)
	if len(ids) != 1 {
		return "", false
	}
	return ids[0], true
}

// Candidates returns the strings that become synonyms of the entry:
// symbol, protein name, synonyms and previous symbols, in this order.
// Duplicates are kept.
func (e Entry) Candidates() []string {
	syns := SplitList(e.Synonyms)
	prev := SplitList(e.PrevSymbols)
	res := make([]string, 0, 2+len(syns)+len(prev))
	res = append(res, e.Symbol, e.ProteinName)
	res = append(res, syns...)
	res = append(res, prev...)
	return res
}

// Records converts the entry to records of the given species. It returns
// false and no records if the entry does not map to exactly one
// identifier.
func (e Entry) Records(species string) ([]Record, bool) {
	id, ok := e.Identifier()
	if !ok {
		return nil, false
	}
	cands := e.Candidates()
	res := make([]Record, len(cands))
	for i, v := range cands {
		res[i] = Record{Synonym: v, Identifier: id, Species: species}
	}
	return res, true
}

package terms_test

import (
	"testing"

	"github.com/gnames/hgnckb/pkg/terms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, fields ...string) terms.Entry {
	t.Helper()
	res, err := terms.ParseEntry(fields)
	require.NoError(t, err)
	return res
}

func TestParseEntry(t *testing.T) {
	res, err := terms.ParseEntry([]string{
		"HGNC:5", "A1BG", "alpha-1-B glycoprotein", "Approved", "", "",
		"P04217",
	})
	require.NoError(t, err)
	assert.Equal(t, "HGNC:5", res.HGNCID)
	assert.Equal(t, "A1BG", res.Symbol)
	assert.Equal(t, "alpha-1-B glycoprotein", res.ProteinName)
	assert.Equal(t, "Approved", res.Status)
	assert.Equal(t, "P04217", res.Identifiers)

	_, err = terms.ParseEntry([]string{"HGNC:5", "A1BG"})
	assert.Error(t, err)

	_, err = terms.ParseEntry(make([]string, 8))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		msg string
		inp string
		res []string
	}{
		{"empty", "", nil},
		{"single", "XYZ", []string{"XYZ"}},
		{"two", "XYZ, PQR", []string{"XYZ", "PQR"}},
		{"trims", " XYZ ,  PQR ", []string{"XYZ", "PQR"}},
		{"comma without space", "P1,P2", []string{"P1,P2"}},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, terms.SplitList(v.inp), v.msg)
	}
}

func TestRecordsScenario(t *testing.T) {
	e := entry(t,
		"HGNC:1", "ABC", "Protein ABC", "Approved", "XYZ, PQR", "OLD1",
		"P12345",
	)
	res, ok := e.Records("Human")
	require.True(t, ok)
	assert.Equal(t, []terms.Record{
		{Synonym: "ABC", Identifier: "P12345", Species: "Human"},
		{Synonym: "Protein ABC", Identifier: "P12345", Species: "Human"},
		{Synonym: "XYZ", Identifier: "P12345", Species: "Human"},
		{Synonym: "PQR", Identifier: "P12345", Species: "Human"},
		{Synonym: "OLD1", Identifier: "P12345", Species: "Human"},
	}, res)
}

func TestRecordsCount(t *testing.T) {
	tests := []struct {
		msg  string
		syns string
		prev string
	}{
		{"no lists", "", ""},
		{"synonyms only", "A, B, C", ""},
		{"previous only", "", "X"},
		{"both", "A, B", "X, Y, Z"},
		{"duplicates kept", "ABC, ABC", "ABC"},
	}

	for _, v := range tests {
		e := entry(t, "HGNC:2", "ABC", "Protein", "Approved", v.syns, v.prev,
			"Q1")
		res, ok := e.Records("Human")
		require.True(t, ok, v.msg)
		exp := 2 + len(terms.SplitList(v.syns)) + len(terms.SplitList(v.prev))
		assert.Len(t, res, exp, v.msg)
	}
}

func TestRecordsIdentifiers(t *testing.T) {
	tests := []struct {
		msg string
		ids string
		ok  bool
		id  string
	}{
		{"single", "P12345", true, "P12345"},
		{"padded", " P12345 ", true, "P12345"},
		{"none", "", false, ""},
		{"two", "P1, P2", false, ""},
		{"three", "P1, P2, P3", false, ""},
	}

	for _, v := range tests {
		e := entry(t, "HGNC:3", "ABC", "Protein", "Approved", "S1", "", v.ids)
		id, ok := e.Identifier()
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.id, id, v.msg)

		res, ok := e.Records("Human")
		assert.Equal(t, v.ok, ok, v.msg)
		if !v.ok {
			assert.Empty(t, res, v.msg)
		}
	}
}

func TestGenerator(t *testing.T) {
	gen := terms.NewGenerator("Human")

	ok := gen.Add(entry(t,
		"HGNC:1", "ABC", "Protein ABC", "Approved", "XYZ, PQR", "OLD1",
		"P12345",
	))
	assert.True(t, ok)

	ok = gen.Add(entry(t,
		"HGNC:2", "DEF", "Protein DEF", "Approved", "", "", "P1, P2",
	))
	assert.False(t, ok)

	ok = gen.Add(entry(t,
		"HGNC:3", "GHI", "Protein GHI", "Approved", "", "", "",
	))
	assert.False(t, ok)

	ok = gen.Add(entry(t,
		"HGNC:4", "JKL", "Protein JKL", "Approved", "", "ABC", "Q99999",
	))
	assert.True(t, ok)

	assert.Equal(t, 4, gen.Rows())
	assert.Equal(t, 2, gen.Skipped())

	recs := gen.Records()
	require.Len(t, recs, 8)
	assert.Equal(t, "ABC", recs[0].Synonym)
	assert.Equal(t, "OLD1", recs[4].Synonym)
	assert.Equal(t, terms.Record{
		Synonym: "ABC", Identifier: "Q99999", Species: "Human",
	}, recs[7])
}

func TestFilter(t *testing.T) {
	recs := []terms.Record{
		{Synonym: "ABC", Identifier: "P12345", Species: "Human"},
		{Synonym: "Protein ABC", Identifier: "P12345", Species: "Human"},
		{Synonym: "ABC", Identifier: "Q99999", Species: "Human"},
	}
	set := terms.NewReferenceSet()
	set.Add("ABC", "P12345")
	set.Add("ABC", "P12345")
	set.Add("XYZ", "P00000")
	assert.Equal(t, 2, set.Len())

	res := terms.Filter(recs, set)
	assert.Equal(t, []terms.Record{
		{Synonym: "Protein ABC", Identifier: "P12345", Species: "Human"},
		{Synonym: "ABC", Identifier: "Q99999", Species: "Human"},
	}, res)
	assert.Len(t, recs, 3, "input is not modified")

	t.Run("idempotent", func(t *testing.T) {
		again := terms.Filter(res, set)
		assert.Equal(t, res, again)
	})

	t.Run("empty set keeps everything", func(t *testing.T) {
		all := terms.Filter(recs, terms.NewReferenceSet())
		assert.Equal(t, recs, all)
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		inp string
		res string
	}{
		{"ABC", "abc"},
		{"α-Protein1", "protein1"},
		{"Protein ABC", "proteinabc"},
		{"IL-1β", "il1"},
		{"--", ""},
		{"", ""},
		{"a_b.C(2)", "abc2"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, terms.NormalizeKey(v.inp), v.inp)
	}
}

func TestSort(t *testing.T) {
	recs := []terms.Record{
		{Synonym: "protein2", Identifier: "P1", Species: "Human"},
		{Synonym: "α-Protein1", Identifier: "P2", Species: "Human"},
		{Synonym: "Protein1", Identifier: "P1", Species: "Human"},
		{Synonym: "ABC", Identifier: "P9", Species: "Human"},
		{Synonym: "abc", Identifier: "P0", Species: "Human"},
		{Synonym: "A-B-C", Identifier: "P0", Species: "Human"},
	}
	terms.Sort(recs)

	assert.Equal(t, []terms.Record{
		{Synonym: "abc", Identifier: "P0", Species: "Human"},
		{Synonym: "A-B-C", Identifier: "P0", Species: "Human"},
		{Synonym: "ABC", Identifier: "P9", Species: "Human"},
		{Synonym: "Protein1", Identifier: "P1", Species: "Human"},
		{Synonym: "α-Protein1", Identifier: "P2", Species: "Human"},
		{Synonym: "protein2", Identifier: "P1", Species: "Human"},
	}, recs)

	t.Run("deterministic", func(t *testing.T) {
		again := make([]terms.Record, len(recs))
		copy(again, recs)
		terms.Sort(again)
		assert.Equal(t, recs, again)
	})

	t.Run("species breaks ties", func(t *testing.T) {
		recs := []terms.Record{
			{Synonym: "X", Identifier: "P1", Species: "Mouse"},
			{Synonym: "x", Identifier: "P1", Species: "Human"},
		}
		terms.Sort(recs)
		assert.Equal(t, "Human", recs[0].Species)
	})
}

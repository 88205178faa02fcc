package recommend

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// vectorSpace is a TF-IDF space fit over one set of documents. It lives only
// for the duration of a single ranking call.
type vectorSpace struct {
	rows []map[string]float64
}

// fitTFIDF weights raw term counts by smoothed IDF, ln((1+n)/(1+df))+1, and
// L2-normalizes each row. A document with no tokens gets an empty row.
func fitTFIDF(docs []string) vectorSpace {
	counts := make([]map[string]float64, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]float64)
		for _, tok := range tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}
	if len(df) == 0 {
		return vectorSpace{rows: counts}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	for _, row := range counts {
		var norm float64
		for term, c := range row {
			w := c * idf[term]
			row[term] = w
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term := range row {
			row[term] /= norm
		}
	}
	return vectorSpace{rows: counts}
}

// empty reports whether the fitted vocabulary has no terms.
func (vs vectorSpace) empty() bool {
	for _, row := range vs.rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// cosine returns the cosine similarity of rows i and j. Rows are already unit
// length, so this is their dot product; a zero row yields 0.
func (vs vectorSpace) cosine(i, j int) float64 {
	a, b := vs.rows[i], vs.rows[j]
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a {
		dot += w * b[term]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/trendscope/trendscope/internal/dataset"
)

// FeatureIndex is a TF-IDF vector index over item text. The vocabulary
// is capped to the most document-frequent terms, English stopwords are
// excluded, and document vectors are L2-normalized so cosine similarity
// reduces to a dot product.
//
// A FeatureIndex is immutable once built; the snapshot engine builds a
// fresh index per rebuild instead of mutating a shared one.
type FeatureIndex struct {
	maxFeatures int

	vocab map[string]int // term -> dimension
	idf   []float64      // per dimension
	docs  []sparseVector // per item, same order as the build input
	byID  map[string]int // item id -> position in docs
	nDocs int
	built bool
}

// sparseVector maps vocabulary dimensions to weights.
type sparseVector map[int]float64

// NewFeatureIndex creates an unbuilt index. maxFeatures values below 1
// fall back to the default vocabulary cap of 1000.
func NewFeatureIndex(maxFeatures int) *FeatureIndex {
	if maxFeatures < 1 {
		maxFeatures = 1000
	}
	return &FeatureIndex{maxFeatures: maxFeatures}
}

// Build constructs the vocabulary and document vectors from the items.
// Building replaces any previous state.
func (fi *FeatureIndex) Build(items []dataset.Item) {
	fi.vocab = make(map[string]int)
	fi.idf = nil
	fi.docs = make([]sparseVector, len(items))
	fi.byID = make(map[string]int, len(items))
	fi.nDocs = len(items)
	fi.built = true

	if len(items) == 0 {
		return
	}

	// Tokenize every document once; collect document frequencies.
	docTokens := make([][]string, len(items))
	df := make(map[string]int)
	for i := range items {
		tokens := tokenize(combinedText(&items[i]))
		docTokens[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Vocabulary: top maxFeatures terms by document frequency, term
	// ascending on ties for determinism.
	type termFreq struct {
		term string
		df   int
	}
	terms := make([]termFreq, 0, len(df))
	for term, n := range df {
		terms = append(terms, termFreq{term: term, df: n})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].df != terms[j].df {
			return terms[i].df > terms[j].df
		}
		return terms[i].term < terms[j].term
	})
	if len(terms) > fi.maxFeatures {
		terms = terms[:fi.maxFeatures]
	}

	fi.idf = make([]float64, len(terms))
	for dim, tf := range terms {
		fi.vocab[tf.term] = dim
		// Smoothed IDF keeps weights finite for terms present in every
		// document.
		fi.idf[dim] = math.Log(float64(1+fi.nDocs)/float64(1+tf.df)) + 1
	}

	for i, tokens := range docTokens {
		fi.docs[i] = fi.vectorize(tokens)
		if id := items[i].ID; id != "" {
			if _, dup := fi.byID[id]; !dup {
				fi.byID[id] = i
			}
		}
	}
}

// Built reports whether Build has been called.
func (fi *FeatureIndex) Built() bool {
	return fi.built
}

// VocabularySize returns the number of indexed terms.
func (fi *FeatureIndex) VocabularySize() int {
	return len(fi.vocab)
}

// Len returns the number of indexed documents.
func (fi *FeatureIndex) Len() int {
	return len(fi.docs)
}

// QueryScores returns the cosine similarity of a free-text query against
// every indexed document, in document order. It returns nil for an
// unbuilt index; a query with no indexed terms scores zero everywhere.
func (fi *FeatureIndex) QueryScores(query string) []float64 {
	if !fi.built {
		return nil
	}
	return fi.similarities(fi.vectorize(tokenize(query)))
}

// DocScores returns the cosine similarity of the identified document
// against every indexed document, in document order. The second return
// is false when the id is unknown or the index is unbuilt.
func (fi *FeatureIndex) DocScores(itemID string) ([]float64, bool) {
	if !fi.built {
		return nil, false
	}
	pos, ok := fi.byID[itemID]
	if !ok {
		return nil, false
	}
	return fi.similarities(fi.docs[pos]), true
}

// DocPosition returns the build-order position of an item id.
func (fi *FeatureIndex) DocPosition(itemID string) (int, bool) {
	pos, ok := fi.byID[itemID]
	return pos, ok
}

// similarities computes dot products of a normalized query vector
// against all normalized document vectors.
func (fi *FeatureIndex) similarities(query sparseVector) []float64 {
	scores := make([]float64, len(fi.docs))
	for i, doc := range fi.docs {
		// Iterate the smaller vector.
		a, b := query, doc
		if len(b) < len(a) {
			a, b = b, a
		}
		var dot float64
		for dim, w := range a {
			dot += w * b[dim]
		}
		scores[i] = dot
	}
	return scores
}

// vectorize builds an L2-normalized TF-IDF vector from tokens.
func (fi *FeatureIndex) vectorize(tokens []string) sparseVector {
	vec := make(sparseVector)
	for _, tok := range tokens {
		if dim, ok := fi.vocab[tok]; ok {
			vec[dim]++
		}
	}
	if len(vec) == 0 {
		return vec
	}

	var norm float64
	for dim := range vec {
		vec[dim] *= fi.idf[dim]
		norm += vec[dim] * vec[dim]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for dim := range vec {
			vec[dim] /= norm
		}
	}
	return vec
}

// combinedText concatenates the text features of an item.
func combinedText(it *dataset.Item) string {
	var b strings.Builder
	b.WriteString(it.Title)
	b.WriteByte(' ')
	b.WriteString(it.Text)
	for _, k := range it.Keywords {
		b.WriteByte(' ')
		b.WriteString(k)
	}
	for _, h := range it.Hashtags {
		b.WriteByte(' ')
		b.WriteString(h)
	}
	return b.String()
}

// tokenize lowercases and splits text into alphanumeric runs of at least
// two characters, dropping English stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := englishStopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// englishStopwords is the filtered term list for feature extraction.
var englishStopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"could", "did", "do", "does", "doing", "down", "during", "each",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"he", "her", "here", "hers", "herself", "him", "himself", "his",
		"how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "ourselves", "out", "over", "own", "same", "she", "should",
		"so", "some", "such", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "very",
		"was", "we", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "will", "with", "would", "you", "your",
		"yours", "yourself", "yourselves",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

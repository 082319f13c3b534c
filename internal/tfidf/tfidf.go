package tfidf

import "math"

// Scorer computes TF-IDF scores against a fixed small corpus of
// documents (for this package: a result's title, URL, and summary).
type Scorer struct {
	docs []map[string]int // per-document term counts
	lens []int            // per-document token counts
	df   map[string]int   // document frequency per term
}

// UnprocessedDocuments builds a Scorer from raw, untokenized documents,
// running each through Tokenize with the given stopword and punctuation
// lists before indexing.
func UnprocessedDocuments(documents []string, stopWords, punctuation []string) *Scorer {
	s := &Scorer{
		docs: make([]map[string]int, len(documents)),
		lens: make([]int, len(documents)),
		df:   make(map[string]int),
	}

	for i, doc := range documents {
		tokens := Tokenize(doc, stopWords, punctuation)
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		s.docs[i] = counts
		s.lens[i] = len(tokens)

		for term := range counts {
			s.df[term]++
		}
	}

	return s
}

// idf is the smoothed inverse document frequency: ln((1+N)/(1+df)) + 1,
// so a term present in every document still contributes a small positive
// weight rather than collapsing to zero.
func (s *Scorer) idf(term string) float64 {
	n := float64(len(s.docs))
	df := float64(s.df[term])
	return math.Log((1+n)/(1+df)) + 1
}

// GetScore returns the summed TF-IDF weight of token across every
// document in the corpus. A token absent from every document scores 0.
func (s *Scorer) GetScore(token string) float64 {
	if len(s.docs) == 0 {
		return 0
	}

	weight := s.idf(token)

	var total float64
	for i, counts := range s.docs {
		if s.lens[i] == 0 {
			continue
		}
		tf := float64(counts[token]) / float64(s.lens[i])
		total += tf * weight
	}
	return total
}

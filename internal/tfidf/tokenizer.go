// Package tfidf scores how relevant a merged search result is to a query
// using term frequency / inverse document frequency over the result's
// title, URL, and summary.
package tfidf

import (
	"strings"

	"github.com/coregx/coregex"
)

// wordPattern matches runs of letters/digits/underscore, the same token
// shape most TF-IDF implementations split on before stopword/punctuation
// filtering.
var wordPattern = coregex.MustCompile(`[\p{L}\p{N}_]+`)

// EnglishStopwords is the default stopword list filtered out of every
// document before scoring.
var EnglishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "were", "will", "with", "this", "these", "those",
	"but", "or", "not", "can", "do", "does", "did", "have", "had",
	"i", "you", "your", "we", "they", "their", "his", "her", "them",
}

// DefaultPunctuation is the default punctuation-token list filtered out
// of every document before scoring, kept separate from stopwords since
// callers sometimes want to swap one without the other.
var DefaultPunctuation = []string{
	".", ",", "!", "?", ";", ":", "\"", "'", "(", ")", "[", "]", "{", "}", "-", "/", "\\",
}

// Tokenize lowercases s, splits it into word tokens, and drops anything in
// stopWords or punctuation.
func Tokenize(s string, stopWords, punctuation []string) []string {
	stop := toSet(stopWords)
	punct := toSet(punctuation)

	matches := wordPattern.FindAllString(strings.ToLower(s), -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := stop[m]; ok {
			continue
		}
		if _, ok := punct[m]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

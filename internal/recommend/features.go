// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend implements content-based movie recommendations:
// a user's favorited movies are reduced to a set of genre and keyword
// features, candidate movies are scored against that profile by Jaccard
// similarity, and the best matches are returned ranked.
package recommend

import (
	"strings"

	"github.com/pdiddy/movie-engine/pkg/types"
)

// FeatureSet is a movie's content signature: the set of its genre and
// keyword names, lowercased at construction so membership tests never
// need to normalize.
type FeatureSet map[string]struct{}

// ExtractFeatures derives the feature set of a movie from its genre and
// keyword tags. Genre and keyword names share one flat namespace.
// Missing tag lists contribute nothing.
func ExtractFeatures(detail *types.MovieDetail) FeatureSet {
	features := make(FeatureSet)
	if detail == nil {
		return features
	}
	for _, g := range detail.Genres {
		features.add(g.Name)
	}
	for _, k := range detail.Keywords.Keywords {
		features.add(k.Name)
	}
	return features
}

func (s FeatureSet) add(name string) {
	if name == "" {
		return
	}
	s[strings.ToLower(name)] = struct{}{}
}

// Union merges other into s.
func (s FeatureSet) Union(other FeatureSet) {
	for f := range other {
		s[f] = struct{}{}
	}
}

// Jaccard returns the Jaccard index |a∩b| / |a∪b| of two feature sets,
// in [0,1]. Either operand being empty yields 0.
func Jaccard(a, b FeatureSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for f := range a {
		if _, ok := b[f]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"testing"

	"github.com/pdiddy/movie-engine/pkg/types"
)

func set(features ...string) FeatureSet {
	s := make(FeatureSet)
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

func detailWithTags(id int, genres []string, keywords []string) *types.MovieDetail {
	d := &types.MovieDetail{ID: id}
	for i, g := range genres {
		d.Genres = append(d.Genres, types.Genre{ID: i + 1, Name: g})
	}
	for i, k := range keywords {
		d.Keywords.Keywords = append(d.Keywords.Keywords, types.Keyword{ID: i + 100, Name: k})
	}
	return d
}

// --- ExtractFeatures ---

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name   string
		detail *types.MovieDetail
		want   FeatureSet
	}{
		{
			name:   "genres and keywords merge into one namespace",
			detail: detailWithTags(1, []string{"Action", "Thriller"}, []string{"heist", "revenge"}),
			want:   set("action", "thriller", "heist", "revenge"),
		},
		{
			name:   "names are lowercased",
			detail: detailWithTags(1, []string{"SCIENCE Fiction"}, []string{"Time Travel"}),
			want:   set("science fiction", "time travel"),
		},
		{
			name:   "duplicate names collapse",
			detail: detailWithTags(1, []string{"Drama", "drama"}, []string{"Drama"}),
			want:   set("drama"),
		},
		{
			name:   "missing keywords tolerated",
			detail: detailWithTags(1, []string{"Comedy"}, nil),
			want:   set("comedy"),
		},
		{
			name:   "missing genres tolerated",
			detail: detailWithTags(1, nil, []string{"parody"}),
			want:   set("parody"),
		},
		{
			name:   "empty detail gives empty set",
			detail: &types.MovieDetail{ID: 1},
			want:   set(),
		},
		{
			name:   "nil detail gives empty set",
			detail: nil,
			want:   set(),
		},
		{
			name:   "empty names are dropped",
			detail: detailWithTags(1, []string{""}, []string{""}),
			want:   set(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFeatures(tt.detail)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractFeatures() = %v, want %v", got, tt.want)
			}
			for f := range tt.want {
				if _, ok := got[f]; !ok {
					t.Errorf("ExtractFeatures() missing feature %q", f)
				}
			}
		})
	}
}

// --- Jaccard ---

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b FeatureSet
		want float64
	}{
		{"both empty", set(), set(), 0},
		{"left empty", set(), set("action"), 0},
		{"right empty", set("action"), set(), 0},
		{"identical", set("action", "thriller"), set("action", "thriller"), 1},
		{"disjoint", set("action"), set("romance"), 0},
		{"half overlap", set("action", "thriller"), set("action"), 0.5},
		{"one of three", set("a", "b"), set("b", "c"), 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); got != tt.want {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSymmetric(t *testing.T) {
	pairs := []struct {
		a, b FeatureSet
	}{
		{set("action", "thriller"), set("action")},
		{set("a", "b", "c"), set("c", "d")},
		{set(), set("x")},
		{set("x"), set("x")},
	}
	for _, p := range pairs {
		if got, want := Jaccard(p.a, p.b), Jaccard(p.b, p.a); got != want {
			t.Errorf("Jaccard(%v, %v) = %v but reversed = %v", p.a, p.b, got, want)
		}
	}
}

func TestJaccardRange(t *testing.T) {
	a := set("a", "b", "c", "d")
	b := set("c", "d", "e")
	got := Jaccard(a, b)
	if got < 0 || got > 1 {
		t.Errorf("Jaccard() = %v, want value in [0,1]", got)
	}
}

func TestJaccardSelfIdentity(t *testing.T) {
	a := set("action", "heist", "neo-noir")
	if got := Jaccard(a, a); got != 1.0 {
		t.Errorf("Jaccard(A, A) = %v, want 1.0", got)
	}
}

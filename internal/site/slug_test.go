package site

import (
	"strings"
	"testing"
)

func TestSlugify_FoldsCzechDiacritics(t *testing.T) {
	got := Slugify("Novela zákoníku práce: Změny v oblasti dovolené")
	want := "novela-zakoniku-prace-zmeny-v-oblasti-dovolene"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSlugify_CollapsesNonAlphanumericRuns(t *testing.T) {
	if got := Slugify("Soud -- rozhodl!! (konečně)"); got != "soud-rozhodl-konecne" {
		t.Errorf("got %q", got)
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	got := Slugify(strings.Repeat("dlouhý titulek ", 20))
	if len(got) > 60 {
		t.Errorf("slug too long: %d chars", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug must not end with dash: %q", got)
	}
}

func TestSlugify_EmptyFallsBack(t *testing.T) {
	for _, in := range []string{"", "???", "«»"} {
		if got := Slugify(in); got != "clanek" {
			t.Errorf("Slugify(%q) = %q, want clanek", in, got)
		}
	}
}

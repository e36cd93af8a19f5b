package services

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Sigiriya ": "sigiriya",
		"GALLE":       "galle",
		"Sīgiriya":    "sigiriya",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest(t *testing.T) {
	names := []string{"Sigiriya Rock Fortress", "Galle Fort", "Temple of the Tooth"}

	if got := Suggest(names, "sigirya rock fortress"); got != "Sigiriya Rock Fortress" {
		t.Errorf("expected Sigiriya suggestion, got %q", got)
	}

	// nothing remotely close
	if got := Suggest(names, "zzzzzzzzzz"); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}

	if got := Suggest(nil, "galle"); got != "" {
		t.Errorf("expected no suggestion for empty names, got %q", got)
	}
	if got := Suggest(names, ""); got != "" {
		t.Errorf("expected no suggestion for empty query, got %q", got)
	}
}

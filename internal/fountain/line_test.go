package fountain

import "testing"

func TestClassify_SceneHeadings(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"interior", "INT. STUDIO - DAY"},
		{"exterior", "EXT. PARKING LOT - NIGHT"},
		{"combined", "INT/EXT. CAR - DAY"},
		{"abbreviated", "I/E. DOORWAY - DUSK"},
		{"lowercase", "int. studio - day"},
		{"mixed case", "Int. Studio - Day"},
		{"indented", "  INT. STUDIO - DAY"},
		{"with scene number token", "INT. STUDIO - DAY #12A#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != LineSceneHeading {
				t.Errorf("Classify(%q).Kind = %v, want LineSceneHeading", tt.line, got.Kind)
			}
		})
	}
}

func TestClassify_SetupMarker(t *testing.T) {
	got := Classify("[[SETUP A: wide on the couch]]")
	if got.Kind != LineSetupMarker {
		t.Fatalf("Kind = %v, want LineSetupMarker", got.Kind)
	}
	if got.SetupLetter != "A" {
		t.Errorf("SetupLetter = %q, want %q", got.SetupLetter, "A")
	}
	if got.SetupDescription != "wide on the couch" {
		t.Errorf("SetupDescription = %q, want %q", got.SetupDescription, "wide on the couch")
	}
}

func TestClassify_SetupMarker_TrimsDescription(t *testing.T) {
	got := Classify("[[SETUP B:   over the shoulder   ]]")
	if got.Kind != LineSetupMarker {
		t.Fatalf("Kind = %v, want LineSetupMarker", got.Kind)
	}
	if got.SetupDescription != "over the shoulder" {
		t.Errorf("SetupDescription = %q, want %q", got.SetupDescription, "over the shoulder")
	}
}

func TestClassify_MalformedMarkers_FallThroughToContent(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"lowercase letter", "[[SETUP a: wide]]"},
		{"missing letter", "[[SETUP : wide]]"},
		{"multi-letter", "[[SETUP AB: wide]]"},
		{"digit", "[[SETUP 1: wide]]"},
		{"unterminated", "[[SETUP A: wide"},
		{"no description", "[[SETUP A:]]"},
		{"no colon", "[[SETUP A wide]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != LineContent {
				t.Errorf("Classify(%q).Kind = %v, want LineContent", tt.line, got.Kind)
			}
		})
	}
}

func TestClassify_Transitions(t *testing.T) {
	tests := []string{
		"CUT TO:",
		"FADE TO:",
		"DISSOLVE TO:",
		"SMASH CUT TO:",
		"cut to:",
		"FADE IN:",
		"FADE OUT.",
		"  CUT TO:  ",
	}

	for _, line := range tests {
		got := Classify(line)
		if got.Kind != LineTransition {
			t.Errorf("Classify(%q).Kind = %v, want LineTransition", line, got.Kind)
		}
	}
}

func TestClassify_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		got := Classify(line)
		if got.Kind != LineBlank {
			t.Errorf("Classify(%q).Kind = %v, want LineBlank", line, got.Kind)
		}
	}
}

func TestClassify_Content(t *testing.T) {
	tests := []string{
		"MARGO",
		"She picks up the phone.",
		"(beat)",
		"The INTERIOR is dark.", // INT prefix requires the dot
		"EXTRA CREDIT",
	}

	for _, line := range tests {
		got := Classify(line)
		if got.Kind != LineContent {
			t.Errorf("Classify(%q).Kind = %v, want LineContent", line, got.Kind)
		}
	}
}

func TestClassify_PreservesRaw(t *testing.T) {
	raw := "  She exits.  "
	got := Classify(raw)
	if got.Raw != raw {
		t.Errorf("Raw = %q, want %q", got.Raw, raw)
	}
}

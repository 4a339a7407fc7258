package fountain

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func mustScan(t *testing.T, lines []string) []Segment {
	t.Helper()
	segments, err := Scan(lines)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return segments
}

func TestScan_RoundTripScenario(t *testing.T) {
	// Same setup re-entered after another: the repeat gets suffix "A".
	lines := []string{
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"Line one.",
		"[[SETUP B: close]]",
		"Line two.",
		"[[SETUP A: wide]]",
		"Line three.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	want := []struct {
		scene  int
		letter string
		suffix string
		lines  []string
	}{
		{1, "A", "", []string{"Line one."}},
		{1, "B", "", []string{"Line two."}},
		{1, "A", "A", []string{"Line three."}},
	}

	for i, w := range want {
		seg := segments[i]
		if seg.SceneIndex != w.scene || seg.SetupLetter != w.letter || seg.Suffix != w.suffix {
			t.Errorf("segment %d = (%d, %s, %q), want (%d, %s, %q)",
				i, seg.SceneIndex, seg.SetupLetter, seg.Suffix, w.scene, w.letter, w.suffix)
		}
		if !reflect.DeepEqual(seg.Lines, w.lines) {
			t.Errorf("segment %d lines = %v, want %v", i, seg.Lines, w.lines)
		}
	}

	if segments[2].Marker() != "#1AA#" {
		t.Errorf("repeat marker = %q, want #1AA#", segments[2].Marker())
	}
}

func TestScan_SetupPersistsAcrossSceneHeading(t *testing.T) {
	lines := []string{
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"In the studio.",
		"EXT. STREET - DAY",
		"On the street, same setup.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}

	second := segments[1]
	if second.SceneIndex != 2 {
		t.Errorf("SceneIndex = %d, want 2", second.SceneIndex)
	}
	if second.SetupLetter != "A" || second.SetupDescription != "wide" {
		t.Errorf("setup = (%s, %s), want (A, wide)", second.SetupLetter, second.SetupDescription)
	}
	// New scene, so the pair (2, A) starts fresh with the bare suffix.
	if second.Suffix != "" {
		t.Errorf("Suffix = %q, want empty", second.Suffix)
	}
}

func TestScan_ContentBeforeAnyMarkerIsUnattributed(t *testing.T) {
	lines := []string{
		"FADE IN:",
		"A title card.",
		"INT. STUDIO - DAY",
		"Still no setup.",
		"[[SETUP A: wide]]",
		"Now attributed.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	if segments[0].Attributed() {
		t.Errorf("segment 0 should be unattributed")
	}
	if segments[0].SceneIndex != 0 {
		t.Errorf("pre-heading segment SceneIndex = %d, want 0", segments[0].SceneIndex)
	}
	if segments[1].Attributed() {
		t.Errorf("segment 1 should be unattributed")
	}
	if segments[1].SceneIndex != 1 {
		t.Errorf("segment 1 SceneIndex = %d, want 1", segments[1].SceneIndex)
	}
	if !segments[2].Attributed() || segments[2].SetupLetter != "A" {
		t.Errorf("segment 2 should be attributed to A")
	}
}

func TestScan_TransitionsDiscarded(t *testing.T) {
	lines := []string{
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"Before the cut.",
		"CUT TO:",
		"After the cut.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}

	want := []string{"Before the cut.", "After the cut."}
	if !reflect.DeepEqual(segments[0].Lines, want) {
		t.Errorf("lines = %v, want %v", segments[0].Lines, want)
	}
}

func TestScan_BlankRunsCollapse(t *testing.T) {
	lines := []string{
		"[[SETUP A: wide]]",
		"",
		"First.",
		"",
		"",
		"Second.",
		"",
	}

	segments := mustScan(t, lines)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}

	// Leading and trailing blanks dropped, interior run collapsed to one.
	want := []string{"First.", "", "Second."}
	if !reflect.DeepEqual(segments[0].Lines, want) {
		t.Errorf("lines = %v, want %v", segments[0].Lines, want)
	}
}

func TestScan_EmptyRunBetweenMarkersDiscarded(t *testing.T) {
	lines := []string{
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"[[SETUP B: close]]",
		"Only B has content.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].SetupLetter != "B" {
		t.Errorf("SetupLetter = %s, want B", segments[0].SetupLetter)
	}
	// The empty A segment consumed no suffix for the pair (1, A).
	if segments[0].Suffix != "" {
		t.Errorf("Suffix = %q, want empty", segments[0].Suffix)
	}
}

func TestScan_ConservationOfContent(t *testing.T) {
	lines := []string{
		"Opening line.",
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"MARGO",
		"This stays.",
		"",
		"(beat)",
		"FADE TO:",
		"[[SETUP B: close]]",
		"So does this.",
		"EXT. STREET - NIGHT",
		"And this.",
	}

	segments := mustScan(t, lines)

	var got []string
	for _, seg := range segments {
		for _, line := range seg.Lines {
			if line != "" {
				got = append(got, line)
			}
		}
	}

	want := []string{
		"Opening line.", "MARGO", "This stays.", "(beat)",
		"So does this.", "And this.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("content lines = %v, want %v", got, want)
	}
}

func TestScan_RepeatedMarkerSameDescriptionConsumesSuffix(t *testing.T) {
	lines := []string{
		"INT. STUDIO - DAY",
		"[[SETUP A: wide]]",
		"One.",
		"[[SETUP A: wide]]",
		"Two.",
		"[[SETUP A: wide]]",
		"Three.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	suffixes := []string{segments[0].Suffix, segments[1].Suffix, segments[2].Suffix}
	want := []string{"", "A", "B"}
	if !reflect.DeepEqual(suffixes, want) {
		t.Errorf("suffixes = %v, want %v", suffixes, want)
	}
}

func TestScan_SuffixesStrictlyIncreasingPerPair(t *testing.T) {
	var lines []string
	lines = append(lines, "INT. STUDIO - DAY")
	for i := 0; i < 30; i++ {
		lines = append(lines, "[[SETUP A: wide]]", fmt.Sprintf("Take %d.", i))
	}

	segments := mustScan(t, lines)
	if len(segments) != 30 {
		t.Fatalf("got %d segments, want 30", len(segments))
	}

	seen := make(map[string]bool)
	for i, seg := range segments {
		if seen[seg.Suffix] {
			t.Fatalf("segment %d: duplicate suffix %q", i, seg.Suffix)
		}
		seen[seg.Suffix] = true
	}
	if segments[27].Suffix != "AA" {
		t.Errorf("28th occurrence suffix = %q, want AA", segments[27].Suffix)
	}
}

func TestScan_SuffixOverflowBoundary(t *testing.T) {
	if testing.Short() {
		t.Skip("generates tens of thousands of lines")
	}

	build := func(repeats int) []string {
		lines := make([]string, 0, repeats*2+1)
		lines = append(lines, "INT. STUDIO - DAY")
		for i := 0; i < repeats; i++ {
			lines = append(lines, "[[SETUP A: wide]]", "Take.")
		}
		return lines
	}

	// The bare occurrence plus MaxSuffixRepeats suffixed repeats succeed.
	segments, err := Scan(build(1 + MaxSuffixRepeats))
	if err != nil {
		t.Fatalf("Scan at the boundary failed: %v", err)
	}
	if last := segments[len(segments)-1].Suffix; last != "ZZZ" {
		t.Errorf("last suffix = %q, want ZZZ", last)
	}

	// One more repeat exhausts the suffix range.
	_, err = Scan(build(1 + MaxSuffixRepeats + 1))
	if err == nil {
		t.Fatal("Scan past the boundary should fail")
	}
	oerr, ok := err.(*OverflowError)
	if !ok {
		t.Fatalf("error type = %T, want *OverflowError", err)
	}
	if oerr.SceneIndex != 1 || oerr.SetupLetter != "A" {
		t.Errorf("overflow pair = (%d, %s), want (1, A)", oerr.SceneIndex, oerr.SetupLetter)
	}
}

func TestScan_NoMarkersAtAll(t *testing.T) {
	lines := []string{
		"INT. STUDIO - DAY",
		"Nothing is annotated.",
		"EXT. STREET - DAY",
		"Nothing here either.",
	}

	segments := mustScan(t, lines)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	for i, seg := range segments {
		if seg.Attributed() {
			t.Errorf("segment %d should be unattributed", i)
		}
	}
}

func TestScan_HeadingOnlyDocument(t *testing.T) {
	segments := mustScan(t, []string{"INT. STUDIO - DAY"})
	if len(segments) != 0 {
		t.Errorf("got %d segments, want 0", len(segments))
	}
}

func TestScan_EmptyInput(t *testing.T) {
	segments := mustScan(t, nil)
	if len(segments) != 0 {
		t.Errorf("got %d segments, want 0", len(segments))
	}

	segments = mustScan(t, strings.Split("\n\n\n", "\n"))
	if len(segments) != 0 {
		t.Errorf("blank document: got %d segments, want 0", len(segments))
	}
}

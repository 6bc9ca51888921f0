package score

import "testing"

func TestEvaluate_ExactTitle(t *testing.T) {
	m := Evaluate("sort", "Sort", "", "misc")
	if !m.TitleHit {
		t.Error("expected title hit")
	}
	// 100 exact + 5 short title
	if m.Points != TitleExact+ShortTitle {
		t.Errorf("Points = %d, want %d", m.Points, TitleExact+ShortTitle)
	}
}

func TestEvaluate_TitlePrefix(t *testing.T) {
	m := Evaluate("sort", "Sorting Algorithms", "", "")
	// 50 contains + 20 prefix + 5 short title
	want := TitleContains + TitlePrefix + ShortTitle
	if m.Points != want {
		t.Errorf("Points = %d, want %d", m.Points, want)
	}
}

func TestEvaluate_TitleContainsNotPrefix(t *testing.T) {
	m := Evaluate("sort", "Bubble Sort", "", "")
	want := TitleContains + ShortTitle
	if m.Points != want {
		t.Errorf("Points = %d, want %d", m.Points, want)
	}
}

func TestEvaluate_BubbleSortScenario(t *testing.T) {
	// Partial title match with three body occurrences: at least 50 + 6.
	m := Evaluate("sort", "Bubble Sort", "sort twice, sort again, then sort", "algorithms")
	if m.BodyHits != 3 {
		t.Errorf("BodyHits = %d, want 3", m.BodyHits)
	}
	if m.Points < TitleContains+3*BodyOccurrence {
		t.Errorf("Points = %d, want >= %d", m.Points, TitleContains+3*BodyOccurrence)
	}
	if !m.Qualifies() {
		t.Error("expected document to qualify")
	}
}

func TestEvaluate_BodyOnly(t *testing.T) {
	m := Evaluate("heap", "Priority Structures", "a heap is a heap", "data-structures")
	if m.TitleHit {
		t.Error("unexpected title hit")
	}
	if m.BodyHits != 2 {
		t.Errorf("BodyHits = %d, want 2", m.BodyHits)
	}
	if !m.Qualifies() {
		t.Error("body occurrences alone should qualify")
	}
	if m.Points != 2*BodyOccurrence+ShortTitle {
		t.Errorf("Points = %d, want %d", m.Points, 2*BodyOccurrence+ShortTitle)
	}
}

func TestEvaluate_CategoryBonusNeverQualifies(t *testing.T) {
	m := Evaluate("algo", "Overview", "nothing relevant here", "algorithms")
	if m.Qualifies() {
		t.Error("category match alone must not qualify a document")
	}
	// Bonuses are still counted; inclusion is gated separately.
	if m.Points != CategoryContains+ShortTitle {
		t.Errorf("Points = %d, want %d", m.Points, CategoryContains+ShortTitle)
	}
}

func TestEvaluate_ShortTitleBoundary(t *testing.T) {
	exactly20 := "abcdefghijklmnopqrst"
	if m := Evaluate("zzz", exactly20, "", ""); m.Points != 0 {
		t.Errorf("20-char title should get no bonus, got %d", m.Points)
	}
	just19 := "abcdefghijklmnopqrs"
	if m := Evaluate("zzz", just19, "", ""); m.Points != ShortTitle {
		t.Errorf("19-char title should get the bonus, got %d", m.Points)
	}
}

func TestEvaluate_CaseInsensitive(t *testing.T) {
	m := Evaluate("SORT", "bubble sort", "Sort SORT sort", "ALGORITHMS")
	if !m.TitleHit {
		t.Error("expected case-insensitive title hit")
	}
	if m.BodyHits != 3 {
		t.Errorf("BodyHits = %d, want 3", m.BodyHits)
	}
}

func TestEvaluate_NonOverlappingBodyCount(t *testing.T) {
	m := Evaluate("aa", "x", "aaaa", "")
	if m.BodyHits != 2 {
		t.Errorf("BodyHits = %d, want 2 (non-overlapping)", m.BodyHits)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	a := Evaluate("sort", "Bubble Sort", "sort sort", "algorithms")
	b := Evaluate("sort", "Bubble Sort", "sort sort", "algorithms")
	if a != b {
		t.Errorf("same inputs produced different matches: %+v vs %+v", a, b)
	}
}

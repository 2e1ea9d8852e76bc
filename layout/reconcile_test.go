package layout

import (
	"testing"

	"github.com/tsawler/recital/model"
)

func makeRegion(typ string, score float64, x1, y1, x2, y2 float64) model.Region {
	return model.Region{
		Type:  typ,
		Score: score,
		Box:   model.NewBBox(x1, y1, x2, y2),
	}
}

func publaynetSpec() ModelSpec {
	spec, _ := DefaultCatalog().Spec("publaynet")
	return spec
}

func TestCatalog_Spec(t *testing.T) {
	catalog := DefaultCatalog()

	spec, err := catalog.Spec("publaynet")
	if err != nil {
		t.Fatalf("Spec(publaynet) error: %v", err)
	}
	if spec.LabelMap[1] != "Title" {
		t.Errorf("publaynet class 1 = %q, want Title", spec.LabelMap[1])
	}
	if spec.Threshold != 0.4 {
		t.Errorf("publaynet threshold = %v, want 0.4", spec.Threshold)
	}

	if _, err := catalog.Spec("nonexistent"); err == nil {
		t.Error("expected error for unknown model name")
	}
}

func TestModelSpec_TypeSets(t *testing.T) {
	spec := publaynetSpec()

	if !spec.HasTextType("Text") {
		t.Error("expected Text to be a text type")
	}
	if spec.HasTextType("Figure") {
		t.Error("expected Figure to not be a text type")
	}
	if !spec.HasAnchorType("Title") {
		t.Error("expected Title to be an anchor type")
	}
	if spec.HasAnchorType("Text") {
		t.Error("expected Text to not be an anchor type")
	}
}

func TestReconciler_EmptyInput(t *testing.T) {
	r := NewReconciler()

	got := r.Reconcile(nil, publaynetSpec(), 1000, 1000)
	if len(got) != 0 {
		t.Errorf("Reconcile(nil) returned %d regions, want 0", len(got))
	}
}

func TestReconciler_FiltersNonTextTypes(t *testing.T) {
	r := NewReconciler()

	regions := []model.Region{
		makeRegion("Text", 0.9, 100, 300, 500, 400),
		makeRegion("Table", 0.9, 100, 450, 500, 550),
		makeRegion("Figure", 0.9, 100, 600, 500, 700),
	}

	got := r.Reconcile(regions, publaynetSpec(), 1000, 1000)
	if len(got) != 1 {
		t.Fatalf("Reconcile() kept %d regions, want 1", len(got))
	}
	if got[0].Type != "Text" {
		t.Errorf("kept region type = %q, want Text", got[0].Type)
	}
}

func TestReconciler_IoUDeduplication(t *testing.T) {
	r := NewReconciler()

	// Near-identical boxes: the higher-scored detection survives.
	regions := []model.Region{
		makeRegion("Text", 0.6, 2, 102, 502, 402),
		makeRegion("Text", 0.9, 0, 100, 500, 400),
	}

	got := r.Reconcile(regions, publaynetSpec(), 1000, 1000)
	if len(got) != 1 {
		t.Fatalf("Reconcile() kept %d regions, want 1", len(got))
	}
	if got[0].Score != 0.9 {
		t.Errorf("kept region score = %v, want the higher-scored 0.9", got[0].Score)
	}
}

func TestReconciler_LowOverlapBothSurvive(t *testing.T) {
	r := NewReconciler()

	regions := []model.Region{
		makeRegion("Text", 0.9, 0, 100, 480, 400),
		makeRegion("Text", 0.8, 520, 100, 1000, 400),
	}

	got := r.Reconcile(regions, publaynetSpec(), 1000, 1000)
	if len(got) != 2 {
		t.Errorf("Reconcile() kept %d regions, want 2", len(got))
	}
}

func TestReconciler_AnchorBanding(t *testing.T) {
	r := NewReconciler()

	// Candidate centers: 30 above the anchor span, 400 inside it, 800 below.
	title := makeRegion("Title", 0.9, 100, 300, 600, 500)
	above := makeRegion("Text", 0.9, 100, 25, 300, 35)
	inside := makeRegion("Text", 0.9, 100, 395, 300, 405)
	below := makeRegion("Text", 0.9, 100, 795, 300, 805)

	got := r.Reconcile([]model.Region{title, above, inside, below}, publaynetSpec(), 1000, 1000)

	if len(got) != 2 {
		t.Fatalf("Reconcile() kept %d regions, want 2", len(got))
	}
	if got[0].Type != "Title" {
		t.Errorf("first kept region = %q, want the Title anchor", got[0].Type)
	}
	if got[1].Box != inside.Box {
		t.Errorf("second kept region = %+v, want the in-span candidate", got[1].Box)
	}
}

func TestReconciler_TallRegionIsAnchor(t *testing.T) {
	r := NewReconciler()

	// No anchor-typed regions, but one 500px-tall Text region exceeds 2%
	// of the page height and bounds the span. The small candidate sits
	// inside the span, the noise candidate above it.
	tall := makeRegion("Text", 0.9, 100, 200, 600, 700)
	small := makeRegion("Text", 0.9, 100, 395, 300, 405)
	noise := makeRegion("Text", 0.9, 100, 25, 300, 35)

	got := r.Reconcile([]model.Region{tall, small, noise}, publaynetSpec(), 1000, 1000)

	if len(got) != 2 {
		t.Fatalf("Reconcile() kept %d regions, want 2", len(got))
	}
	if got[0].Box != tall.Box {
		t.Errorf("first kept region = %+v, want the tall anchor", got[0].Box)
	}
}

func TestReconciler_NoAnchorFallbackBand(t *testing.T) {
	r := NewReconciler()

	// All regions are short candidates, so the fixed 10-90% band applies.
	// Centers: header 30 (3% of page height), body 500, footer 950.
	header := makeRegion("Text", 0.9, 100, 25, 300, 35)
	body := makeRegion("Text", 0.9, 100, 495, 300, 505)
	footer := makeRegion("Text", 0.9, 100, 945, 300, 955)

	got := r.Reconcile([]model.Region{header, body, footer}, publaynetSpec(), 1000, 1000)

	if len(got) != 1 {
		t.Fatalf("Reconcile() kept %d regions, want 1", len(got))
	}
	if got[0].Box != body.Box {
		t.Errorf("kept region = %+v, want the mid-page candidate", got[0].Box)
	}
}

func TestReconciler_BandBoundariesAreStrict(t *testing.T) {
	r := NewReconciler()

	// Centers exactly on the 10% and 90% lines fall outside the band.
	atTop := makeRegion("Text", 0.9, 100, 95, 300, 105)
	atBottom := makeRegion("Text", 0.9, 100, 895, 300, 905)

	got := r.Reconcile([]model.Region{atTop, atBottom}, publaynetSpec(), 1000, 1000)
	if len(got) != 0 {
		t.Errorf("Reconcile() kept %d regions, want 0", len(got))
	}
}

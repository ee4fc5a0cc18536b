package css_test

import (
	"testing"

	"github.com/npillmayer/kaskade"
	"github.com/npillmayer/kaskade/css"
	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenFromLength(t *testing.T) {
	ten := style.Length(10, "pt")
	d, err := css.FromValue(ten, nil)
	if err != nil {
		t.Fatalf("expected 10pt to convert, didn't: %v", err)
	}
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		if du != 10*dimen.PT {
			t.Errorf("expected 10pt in device units, is %v", du)
		}
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", d)
	}
}

func TestDimenFromPixels(t *testing.T) {
	v := style.Length(96, "px")
	d, err := css.FromValue(v, nil)
	if err != nil {
		t.Fatalf("expected 96px to convert, didn't: %v", err)
	}
	var du dimen.DU
	if m := d.Match(); m.Just(&du) == nil {
		t.Fatalf("expected a fixed value, isn't: %#v", d)
	}
	if du != 72*dimen.PT {
		t.Errorf("expected 96px to equal 72pt, is %v", du)
	}
}

func TestDimenFromPercentage(t *testing.T) {
	v := style.Percentage(80)
	d, err := css.FromValue(v, nil)
	if err != nil {
		t.Fatalf("expected 80%% to convert, didn't: %v", err)
	}
	var p percent.Percent
	switch m := d.Match(); m {
	case m.Percentage(&p):
		if p != percent.FromInt(80) {
			t.Errorf("expected 80%%, is %v", p)
		}
	default:
		t.Errorf("expected a percentage value, isn't: %#v", d)
	}
}

func TestDimenFromKeyword(t *testing.T) {
	lib := kaskade.NewLibrary()
	auto := style.Keyword(kaskade.KeywordAuto)
	d, err := css.FromValue(auto, lib.KeywordName)
	if err != nil {
		t.Fatalf("expected auto to convert, didn't: %v", err)
	}
	if m := d.Match(); m.IsKind(css.Auto()) == nil {
		t.Errorf("expected kind auto, isn't: %#v", d)
	}
}

func TestDimenRejectsNonDimension(t *testing.T) {
	if _, err := css.FromValue(style.String("abc"), nil); err == nil {
		t.Error("expected a string value to be rejected, wasn't")
	}
}

func TestDimenPattern(t *testing.T) {
	ten, _ := css.FromValue(style.Length(10, "pt"), nil)
	var du dimen.DU
	m := css.DimenPattern[dimen.DU](ten)
	distance := m.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    m.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected doubled distance, is %v", distance)
	}
}

package kaskade

import (
	"errors"
	"testing"

	"github.com/npillmayer/kaskade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKeywordRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	key, ok := lib.KeywordKey("flex-start")
	if !ok || key != KeywordFlexStart {
		t.Errorf("expected flex-start to resolve to %d, is %d (%v)", KeywordFlexStart, key, ok)
	}
	name, ok := lib.KeywordName(KeywordAuto)
	if !ok || name != "auto" {
		t.Errorf("expected keyword %d to resolve to auto, is %q", KeywordAuto, name)
	}
	if _, ok := lib.KeywordKey("no-such-keyword"); ok {
		t.Error("expected unknown keyword to be absent, isn't")
	}
}

func TestKeywordRegistryRejectsCollisions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	if err := lib.RegisterKeyword(KeywordBuiltinMax, "auto"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate name to be rejected, got %v", err)
	}
	if err := lib.RegisterKeyword(KeywordAuto, "brand-new"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate id to be rejected, got %v", err)
	}
	if err := lib.RegisterKeyword(KeywordBuiltinMax, "brand-new"); err != nil {
		t.Errorf("expected fresh keyword to register, got %v", err)
	}
}

func TestBuiltinPropertiesRegistered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	if lib.PropertyCount() != PropBuiltinMax {
		t.Errorf("expected %d built-in properties, have %d", PropBuiltinMax, lib.PropertyCount())
	}
	width := lib.Property("width")
	if width == nil || width.Key != PropWidth {
		t.Fatalf("expected width to be registered under key %d, is %+v", PropWidth, width)
	}
	if width.Initial.Type() != style.KeywordValue {
		t.Errorf("expected width initial to be the keyword auto, is %v", width.Initial)
	}
	for key := 0; key < lib.PropertyCount(); key++ {
		if lib.PropertyByKey(key) == nil {
			t.Errorf("property key space has a hole at %d", key)
		}
	}
}

func TestRegisterPropertyAssignsDenseKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	key, err := lib.RegisterProperty("grid-gap", "<length> | <percentage>", "0")
	if err != nil {
		t.Fatalf("expected registration to succeed, didn't: %v", err)
	}
	if key != PropBuiltinMax {
		t.Errorf("expected next free key %d, got %d", PropBuiltinMax, key)
	}
	if lib.PropertyCount() != PropBuiltinMax+1 {
		t.Errorf("expected property count to grow to %d, is %d", PropBuiltinMax+1, lib.PropertyCount())
	}
}

func TestRegisterPropertyBadSyntaxFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	if _, err := lib.RegisterProperty("bogus", "auto | <nonsense>", "auto"); err == nil {
		t.Error("expected unknown data type to abort registration, didn't")
	}
	if lib.Property("bogus") != nil {
		t.Error("expected failed registration to leave no trace, didn't")
	}
}

func TestRegisterPropertyBadInitialIsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	key, err := lib.RegisterProperty("strange", "<length>", "not-a-length")
	if err != nil {
		t.Fatalf("expected registration to succeed, didn't: %v", err)
	}
	if lib.PropertyByKey(key).Initial.Type() != style.InvalidValue {
		t.Errorf("expected initial value to be invalid, is %v", lib.PropertyByKey(key).Initial)
	}
}

func TestRegisterPropertyDuplicateFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	if _, err := lib.RegisterProperty("width", "<length>", "0"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate property name to be rejected, got %v", err)
	}
	if err := lib.RegisterPropertyWithKey(PropWidth, "width-2", "<length>", "0"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate property key to be rejected, got %v", err)
	}
}

func TestResolveValueType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	def, ok := lib.ResolveValueType("shadow")
	if !ok || def != "<length>{2,4} && <color>?" {
		t.Errorf("expected shadow alias to resolve, is %q (%v)", def, ok)
	}
}

func TestParseValueFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	lib := NewLibrary()
	v, err := lib.ParseValueFor("width", "100px")
	if err != nil {
		t.Fatalf("expected width value to parse, didn't: %v", err)
	}
	if v.Type() != style.LengthValue || v.Number() != 100 {
		t.Errorf("expected length 100px, is %v", v)
	}
	if _, err := lib.ParseValueFor("no-such-property", "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected unknown property to be flagged, got %v", err)
	}
}

func TestDefaultLibraryLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.library")
	defer teardown()
	//
	Init()
	defer Destroy()
	if Default().Property("color") == nil {
		t.Error("expected the default library to carry built-ins, doesn't")
	}
}

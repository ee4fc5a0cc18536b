package style

import (
	"testing"
)

func TestValueZeroIsUnset(t *testing.T) {
	var v Value
	if v.IsSet() {
		t.Errorf("expected zero value to be unset, isn't: %#v", v)
	}
	if v.Type() != NoValue {
		t.Errorf("expected zero value type to be NoValue, is %s", v.Type())
	}
}

func TestValueVariants(t *testing.T) {
	cases := []struct {
		v    Value
		typ  ValueType
		text string
	}{
		{Number(1.5), NumericValue, "1.5"},
		{Integer(7), IntegerValue, "7"},
		{String("serif"), StringValue, "serif"},
		{Length(100, "px"), LengthValue, "100px"},
		{Percentage(50), PercentageValue, "50%"},
		{Unit(2, "em"), UnitValue, "2em"},
		{RGBA(255, 0, 0, 255), ColorValue, "#ff0000"},
		{RGBA(0, 0, 0, 0), ColorValue, "rgba(0,0,0,0)"},
		{Image("bg.png"), ImageValue, "bg.png"},
		{Unparsed("3px solid"), UnparsedValue, "3px solid"},
	}
	for _, c := range cases {
		if c.v.Type() != c.typ {
			t.Errorf("expected %v to have type %s, has %s", c.v, c.typ, c.v.Type())
		}
		if !c.v.IsValid() {
			t.Errorf("expected %v to be valid, isn't", c.v)
		}
		if c.v.String() != c.text {
			t.Errorf("expected %s rendering, got %s", c.text, c.v.String())
		}
	}
}

func TestValueUnitTruncated(t *testing.T) {
	v := Unit(1, "inch")
	if v.UnitString() != "inc" {
		t.Errorf("expected unit to be cut to 3 chars, is %q", v.UnitString())
	}
}

func TestValueCloneDeep(t *testing.T) {
	inner := []Value{Length(1, "px"), Length(2, "px")}
	arr := Array(inner)
	clone := arr.Clone()
	inner[0] = Length(99, "px")
	if clone.Array()[0].Number() != 1 {
		t.Errorf("expected clone to be unaffected by mutation, is %v", clone)
	}
}

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAction_StringAndParse(t *testing.T) {
	for a := ActionBold; a <= ActionHeader6; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("ParseAction(%q)=(%v,%v), want (%v,true)", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Fatalf("expected none to be rejected")
	}
	if got, ok := ParseAction("  Bold "); !ok || got != ActionBold {
		t.Fatalf("ParseAction should trim and fold case: got (%v,%v)", got, ok)
	}
}

func TestHeaderAction(t *testing.T) {
	if a, ok := HeaderAction(3); !ok || a != ActionHeader3 {
		t.Fatalf("HeaderAction(3)=(%v,%v), want (%v,true)", a, ok, ActionHeader3)
	}
	for _, level := range []int{0, 7} {
		if _, ok := HeaderAction(level); ok {
			t.Fatalf("HeaderAction(%d) should fail", level)
		}
	}
}

func TestAction_ApplyMatchesDirectCalls(t *testing.T) {
	direct := map[Action]func(Editable){
		ActionBold:          Bold,
		ActionItalic:        Italic,
		ActionStrikeThrough: StrikeThrough,
		ActionLink:          Link,
		ActionImage:         Image,
		ActionCode:          Code,
		ActionQuote:         Quote,
		ActionDivider:       Divider,
		ActionBulletList:    func(e Editable) { _ = List(e, Bullets) },
		ActionNumberList:    func(e Editable) { _ = List(e, Numbers) },
		ActionTaskList:      func(e Editable) { _ = List(e, Tasks) },
		ActionHeader2:       func(e Editable) { _ = Header(e, 2) },
		ActionHeader6:       func(e Editable) { _ = Header(e, 6) },
	}
	inputs := []string{"", "Hel|lo", "One\n|Two\nThree|\nFour", "He|ll|o world"}

	for a, fn := range direct {
		var got, want []string
		for _, in := range inputs {
			viaAction := newMarked(t, in)
			if err := a.Apply(viaAction); err != nil {
				t.Fatalf("%v: unexpected error: %v", a, err)
			}
			got = append(got, formatMarked(viaAction))

			viaFunc := newMarked(t, in)
			fn(viaFunc)
			want = append(want, formatMarked(viaFunc))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%v: Apply mismatch (-want +got):\n%s", a, diff)
		}
	}
}

func TestAction_ApplyUnknown(t *testing.T) {
	txt := newMarked(t, "He|llo")
	if err := Action(200).Apply(txt); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	assertMarked(t, "He|llo", txt)

	if err := ActionNone.Apply(txt); err != nil {
		t.Fatalf("ActionNone: unexpected error: %v", err)
	}
	assertMarked(t, "He|llo", txt)
}

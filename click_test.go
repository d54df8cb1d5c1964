package dragarea

import "testing"

func TestDoubleClickBroadcast(t *testing.T) {
	a := New[*canvas](500, 500)
	below := newSquare("below")
	above := newSquare("above")
	a.Add(below, 0, 0)
	a.Add(above, 50, 50)

	a.Click(ButtonPrimary, 2, 75, 75)

	if below.doubles != 1 || above.doubles != 1 {
		t.Errorf("doubles = (%d, %d), want (1, 1)", below.doubles, above.doubles)
	}
	if got := names(a); !equalStrings(got, []string{"below", "above"}) {
		t.Errorf("click changed order to %v", got)
	}
}

func TestClickButtons(t *testing.T) {
	tests := []struct {
		name    string
		button  Button
		doubles int
		middles int
		rights  int
	}{
		{"primary", ButtonPrimary, 1, 0, 0},
		{"middle", ButtonMiddle, 0, 1, 0},
		{"secondary", ButtonSecondary, 0, 0, 1},
		{"unknown", Button(9), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[*canvas](500, 500)
			s := newSquare("s")
			a.Add(s, 100, 100)
			a.Click(tt.button, 1, 150, 150)
			if s.doubles != tt.doubles || s.middles != tt.middles || s.rights != tt.rights {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)",
					s.doubles, s.middles, s.rights, tt.doubles, tt.middles, tt.rights)
			}
		})
	}
}

func TestClickMiss(t *testing.T) {
	a := New[*canvas](500, 500)
	s := newSquare("s")
	a.Add(s, 100, 100)
	a.Click(ButtonSecondary, 1, 300, 300)
	if s.rights != 0 {
		t.Errorf("rights = %d, want 0", s.rights)
	}
}

func TestClickUsesCommittedPan(t *testing.T) {
	a := NewScrollable[*canvas](500, 500)
	s := newSquare("s")
	a.Add(s, 0, 0)
	a.ScrollTo(30, 0, 0, nil) // square drawn at (30, 0)-(130, 100)

	a.Click(ButtonSecondary, 1, 20, 50)
	if s.rights != 0 {
		t.Error("click left of the panned square should miss")
	}
	a.Click(ButtonSecondary, 1, 125, 50)
	if s.rights != 1 {
		t.Errorf("rights = %d, want 1", s.rights)
	}
}

func TestClickWithoutHandlers(t *testing.T) {
	a := New[*canvas](500, 500)
	a.Add(plain{l: Limits{PosX: 10, PosY: 10}}, 0, 0)
	var requests int
	a.SetInvalidator(func() { requests++ })
	a.Click(ButtonPrimary, 2, 5, 5) // must not panic
	if requests != 1 {
		t.Errorf("redraw requests = %d, want 1", requests)
	}
}

func TestMiddleClickRemovesOnNextRender(t *testing.T) {
	a := New[*canvas](500, 500)
	s := newSquare("s")
	a.Add(newSquare("other"), 300, 300)
	a.Add(s, 0, 0)

	a.Click(ButtonMiddle, 1, 50, 50)
	if a.Len() != 2 {
		t.Fatalf("removal must wait for the next render, Len() = %d", a.Len())
	}
	if !a.NeedsRedraw() {
		t.Error("click should request a redraw")
	}

	c := &canvas{}
	if err := a.Render(c, 500, 500); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
	for _, call := range c.calls {
		if call.name == "s" {
			t.Error("removed object was drawn")
		}
	}
}

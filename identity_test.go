package typebus

import "testing"

type swordsman struct {
	bonus int
}

func (s *swordsman) attack(ev *strike) { ev.damage += s.bonus }
func (s *swordsman) parry(ev *strike)  { ev.damage-- }

type strike struct {
	damage int
}

func firstHandler(ev *strike)  { ev.damage++ }
func secondHandler(ev *strike) { ev.damage-- }

func TestIdentity_FuncEquality(t *testing.T) {
	a := Func(firstHandler).Identity()
	b := Func(firstHandler).Identity()
	c := Func(secondHandler).Identity()

	if a != b {
		t.Error("same function should produce equal identities")
	}
	if a == c {
		t.Error("different functions should produce unequal identities")
	}
}

func TestIdentity_MethodEquality(t *testing.T) {
	s1 := &swordsman{bonus: 1}
	s2 := &swordsman{bonus: 2}

	tests := []struct {
		name string
		a, b Identity
		want bool
	}{
		{
			name: "same instance same method",
			a:    Method(s1, (*swordsman).attack).Identity(),
			b:    Method(s1, (*swordsman).attack).Identity(),
			want: true,
		},
		{
			name: "different instances same method",
			a:    Method(s1, (*swordsman).attack).Identity(),
			b:    Method(s2, (*swordsman).attack).Identity(),
			want: false,
		},
		{
			name: "same instance different methods",
			a:    Method(s1, (*swordsman).attack).Identity(),
			b:    Method(s1, (*swordsman).parry).Identity(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("identity equality = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentity_CrossVariant(t *testing.T) {
	s := &swordsman{}

	fn := Func(firstHandler).Identity()
	m := Method(s, (*swordsman).attack).Identity()

	if fn == m {
		t.Error("a function identity must never equal a method identity")
	}
	if fn.Kind() != "func" {
		t.Errorf("Kind() = %q, want %q", fn.Kind(), "func")
	}
	if m.Kind() != "method" {
		t.Errorf("Kind() = %q, want %q", m.Kind(), "method")
	}
}

func TestIdentity_ValueVariants(t *testing.T) {
	s := &swordsman{}

	// Value-returning constructors must agree with the plain ones on
	// identity, so either form can be used for removal.
	plain := Method(s, (*swordsman).attack).Identity()
	valued := MethodValue(s, func(sw *swordsman, ev *strike) int {
		sw.attack(ev)
		return ev.damage
	}).Identity()

	if plain == valued {
		t.Error("distinct methods should produce unequal identities")
	}

	a := FuncValue(func(ev *strike) int { return ev.damage }).Identity()
	if a.Kind() != "func" {
		t.Errorf("Kind() = %q, want %q", a.Kind(), "func")
	}
}

func TestCallback_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Func(nil) should panic")
		}
	}()
	Func[strike](nil)
}

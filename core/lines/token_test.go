package lines

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		value    Value
		wantStr  string
		wantHalf bool
	}{
		{value: IntValue(2), wantStr: "2", wantHalf: false},
		{value: HalfValue(5), wantStr: "5/2", wantHalf: true},
		{value: HalfValue(4), wantStr: "2", wantHalf: false},
		{value: HalfValue(0), wantStr: "0", wantHalf: false},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.wantStr {
			t.Errorf("Value%v.String() = %q, want %q", tt.value, got, tt.wantStr)
		}
		if got := tt.value.IsHalf(); got != tt.wantHalf {
			t.Errorf("Value%v.IsHalf() = %t, want %t", tt.value, got, tt.wantHalf)
		}
	}
}

func TestTokenSegment(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{
			name:  "integer energy",
			token: Token{Kind: EnergyToken, Key: "j", Value: IntValue(2)},
			want:  "j2",
		},
		{
			name:  "half-integer energy",
			token: Token{Kind: EnergyToken, Key: "f", Value: HalfValue(19)},
			want:  "f19_2",
		},
		{
			name:  "literal",
			token: Token{Kind: LiteralToken, Key: "pp"},
			want:  "pp",
		},
		{
			name: "electronic with scoped tokens",
			token: Token{
				Kind: ElectronicToken, Shell: 3, State: "d",
				Sub: []Token{{Kind: EnergyToken, Key: "j", Value: HalfValue(5)}},
			},
			want: "el3d_j5_2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Segment(); got != tt.want {
				t.Errorf("Segment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	electronic := Token{
		Kind: ElectronicToken, Shell: 3, State: "d",
		Sub: []Token{{Kind: EnergyToken, Key: "j", Value: HalfValue(5)}},
	}
	flat := Flatten([]Token{electronic})
	if len(flat) != 2 {
		t.Fatalf("Flatten returned %d tokens, want 2", len(flat))
	}
	if flat[0].Kind != ElectronicToken || flat[0].Sub != nil {
		t.Errorf("flattened head = %+v, want electronic token without Sub", flat[0])
	}
	if flat[1].Kind != EnergyToken || flat[1].Key != "j" {
		t.Errorf("flattened tail = %+v, want the scoped j token", flat[1])
	}

	// The original token is untouched.
	if len(electronic.Sub) != 1 {
		t.Error("Flatten mutated its input")
	}
}

func TestTokenEqual(t *testing.T) {
	a := Token{Kind: EnergyToken, Key: "j", Value: HalfValue(5)}
	b := Token{Kind: EnergyToken, Key: "j", Value: Value{Num: 5, Den: 2}}
	if !a.Equal(b) {
		t.Error("equal tokens compare unequal")
	}
	c := Token{Kind: EnergyToken, Key: "j", Value: IntValue(5)}
	if a.Equal(c) {
		t.Error("5/2 and 5 compare equal")
	}
}

package value

import "testing"

// Golden values: the persistent hash is a cross-run, cross-version
// contract, so these integers may never change.
func TestPersistentHashGolden(t *testing.T) {
	tests := []struct {
		name     string
		v        *Node
		expected int32
	}{
		{"null", Null(), 1314212940},
		{"true", FromBool(true), -1942406963},
		{"false", FromBool(false), -1942406964},
		{"empty array", FromSlice(nil), 1095914073},
		{"empty object", FromKeyVals(nil), 931893923},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PersistentHash(tt.v); got != tt.expected {
				t.Errorf("PersistentHash() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// The combiner, string hash and tags are exported contract; simple
// documents must follow them exactly.
func TestPersistentHashContract(t *testing.T) {
	tests := []struct {
		name     string
		v        *Node
		expected uint32
	}{
		{"string", FromString("hello"), Combine(HashString, StringHash("hello"))},
		{"empty string", FromString(""), Combine(HashString, StringHash(""))},
		{"int", FromInt(42), Combine(HashNumber, StringHash("42"))},
		{"float by literal", FromFloat(1.5), Combine(HashNumber, StringHash("1.5"))},
		{"one-element array",
			FromSlice([]*Node{Null()}),
			Combine(HashArray, HashNull)},
		{"two-element array",
			FromSlice([]*Node{FromBool(true), FromBool(false)}),
			Combine(Combine(HashArray, Combine(HashBool, 1)), Combine(HashBool, 0))},
		{"one-field object",
			FromKeyVals([]KeyVal{{"a", Null()}}),
			Combine(HashObject, Combine(StringHash("a"), HashNull))},
		{"two-field object",
			FromKeyVals([]KeyVal{{"a", Null()}, {"b", FromBool(true)}}),
			Combine(HashObject,
				Combine(StringHash("a"), HashNull)^
					Combine(StringHash("b"), Combine(HashBool, 1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uint32(PersistentHash(tt.v)); got != tt.expected {
				t.Errorf("PersistentHash() = %08x, want %08x", got, tt.expected)
			}
		})
	}
}

func TestPersistentHashEqualConsistency(t *testing.T) {
	pairs := []struct {
		name string
		a, b *Node
	}{
		{"int and float of same literal", FromInt(1), FromFloat(1.0)},
		{"int and literal fallback", FromInt(7), FromNumberLiteral("7")},
		{"object field order",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}}),
			FromKeyVals([]KeyVal{{"b", FromInt(2)}, {"a", FromInt(1)}})},
		{"clone",
			FromKeyVals([]KeyVal{{"xs", FromSlice([]*Node{FromString("x"), Null()})}}),
			FromKeyVals([]KeyVal{{"xs", FromSlice([]*Node{FromString("x"), Null()})}})},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if !Equal(tt.a, tt.b) {
				t.Fatalf("values expected equal")
			}
			ha, hb := PersistentHash(tt.a), PersistentHash(tt.b)
			if ha != hb {
				t.Errorf("equal values hash %d and %d", ha, hb)
			}
		})
	}
}

func TestPersistentHashOrderSensitivity(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(2), FromInt(1)})
	if PersistentHash(a) == PersistentHash(b) {
		t.Errorf("array element order should affect the hash")
	}
}

func TestPersistentHashDeepDocument(t *testing.T) {
	a := deepChain(200000)
	b := deepChain(200000)
	if PersistentHash(a) != PersistentHash(b) {
		t.Errorf("equal deep chains hash differently")
	}
}

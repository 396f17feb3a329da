package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddSetSemantics(t *testing.T) {
	g := New()
	s := IRI("http://tfl.gov.uk/tfl#Bank")
	p := IRI("https://schema.org/name")
	o := Literal("Bank")

	assert.True(t, g.Add(s, p, o))
	assert.False(t, g.Add(s, p, o), "duplicate triple must collapse")
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has(s, p, o))
}

func TestGraph_AddRejectsInvalid(t *testing.T) {
	s := IRI("http://tfl.gov.uk/tfl#Bank")
	p := IRI("https://schema.org/name")

	tests := []struct {
		name      string
		subject   Term
		predicate Term
		object    Term
	}{
		{"empty literal", s, p, Literal("")},
		{"zero object", s, p, Term{}},
		{"literal subject", Literal("Bank"), p, Literal("x")},
		{"blank predicate", s, Blank("p"), Literal("x")},
		{"empty subject", IRI(""), p, Literal("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			assert.False(t, g.Add(tt.subject, tt.predicate, tt.object))
			assert.Equal(t, 0, g.Len())
		})
	}
}

func TestGraph_TriplesSorted(t *testing.T) {
	g := New()
	p := IRI("https://schema.org/name")
	g.Add(Blank("b2"), p, Literal("two"))
	g.Add(IRI("http://x/b"), p, Literal("b"))
	g.Add(Blank("b1"), p, Literal("one"))
	g.Add(IRI("http://x/a"), p, Literal("a"))

	triples := g.Triples()
	require.Len(t, triples, 4)
	assert.Equal(t, "http://x/a", triples[0].Subject.Value)
	assert.Equal(t, "http://x/b", triples[1].Subject.Value)
	assert.Equal(t, "b1", triples[2].Subject.Value)
	assert.Equal(t, "b2", triples[3].Subject.Value)
}

func TestGraph_ObjectsAndCount(t *testing.T) {
	g := New()
	s := IRI("http://tfl.gov.uk/tfl#Bank")
	serves := IRI("http://tfl.gov.uk/tfl#servesLine")
	g.Add(s, serves, Blank("LineNorthern"))
	g.Add(s, serves, Blank("LineCentral"))
	g.Add(s, IRI("https://schema.org/name"), Literal("Bank"))

	assert.Equal(t, []Term{Blank("LineCentral"), Blank("LineNorthern")}, g.Objects(s, serves))
	assert.Equal(t, 2, g.Count(s, serves))
	assert.Equal(t, 3, g.Count(s, Term{}))
	assert.Equal(t, 3, g.Count(Term{}, Term{}))
	assert.Len(t, g.Subjects(), 1)
}

func TestBlankID(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"Oxford_Circus", "ContactDetail", "0"}, "Oxford_CircusContactDetail0"},
		{[]string{"King%27s_Cross", "Toilet", "1"}, "King_27s_CrossToilet1"},
		{[]string{"1", "Placemark"}, "b1Placemark"},
		{[]string{"Line", "Hammersmith & City"}, "LineHammersmith___City"},
		{nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, BlankID(tt.parts...))
		})
	}
}

func TestTerm_String(t *testing.T) {
	assert.Equal(t, "<http://x/a>", IRI("http://x/a").String())
	assert.Equal(t, "_:b1", Blank("b1").String())
	assert.Equal(t, `"say \"hi\"\n"`, Literal("say \"hi\"\n").String())
	assert.Equal(t, "literal", KindLiteral.String())
}

package merge

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Oxford Circus", "oxford circus"},
		{"Harrow-on-the-Hill", "harrow on the hill"},
		{"Edgware Road (Circle Line)", "edgware road circle line"},
		{"King’s Cross St. Pancras", "king's cross st. pancras"},
		{"  Bank  ", "bank"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	names := []string{
		"Oxford Circus",
		"Harrow-on-the-Hill",
		"Edgware Road (Bakerloo)",
		"Shepherd’s Bush",
		"Heathrow Terminals 1-2-3",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			once := Normalize(name)
			assert.Equal(t, once, Normalize(once))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Harrow on the Hill", DisplayName("Harrow-on-the-Hill"))
	assert.Equal(t, "Shepherd's Bush Market", DisplayName("Shepherd’s Bush Market"))
}

func parse(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	return doc
}

const stepFreeFixture = `<Stations xmlns="ELRAD">
  <Station><StationName>Oxford Circus</StationName><Zone>1</Zone></Station>
  <Station><StationName>Bank</StationName><Zone>1</Zone></Station>
</Stations>`

const facilitiesFixture = `<stations>
  <station><name>oxford circus</name><phone>0343 222 1234</phone><zones><zone>1</zone></zones></station>
  <station><name>Euston</name><phone>0343 222 0000</phone></station>
</stations>`

func TestMerge(t *testing.T) {
	primary := parse(t, stepFreeFixture)
	secondary := parse(t, facilitiesFixture)

	merged, stats := Merge(primary, "//Station/StationName", secondary, "//station/name")

	assert.Equal(t, Stats{Primary: 2, Matched: 1, Unmatched: 1}, stats)

	stations := merged.FindElements("//Station")
	require.Len(t, stations, 2)

	t.Run("matched station carries secondary children", func(t *testing.T) {
		oxford := stations[0]
		assert.Equal(t, "Oxford Circus", oxford.SelectElement("StationName").Text())
		require.NotNil(t, oxford.SelectElement("phone"))
		assert.Equal(t, "0343 222 1234", oxford.SelectElement("phone").Text())
		assert.Len(t, oxford.FindElements("zones/zone"), 1)
		assert.Nil(t, oxford.SelectElement("name"), "secondary name field must not be copied")
	})

	t.Run("unmatched primary unchanged", func(t *testing.T) {
		bank := stations[1]
		assert.Len(t, bank.ChildElements(), 2)
		assert.Nil(t, bank.SelectElement("phone"))
	})

	t.Run("unmatched secondary absent", func(t *testing.T) {
		for _, el := range merged.FindElements("//StationName") {
			assert.NotEqual(t, "Euston", el.Text())
		}
		assert.Empty(t, merged.FindElements("//station"))
	})

	t.Run("inputs untouched", func(t *testing.T) {
		assert.Nil(t, primary.FindElement("//Station/phone"))
		assert.Len(t, secondary.FindElements("//station/phone"), 2)
	})
}

func TestMerge_FirstMatchWins(t *testing.T) {
	primary := parse(t, `<Stations><Station><StationName>Bank</StationName></Station></Stations>`)
	secondary := parse(t, `<stations>
  <station><name>BANK</name><phone>first</phone></station>
  <station><name>bank</name><phone>second</phone></station>
</stations>`)

	merged, stats := Merge(primary, "//Station/StationName", secondary, "//station/name")

	phones := merged.FindElements("//Station/phone")
	require.Len(t, phones, 1)
	assert.Equal(t, "first", phones[0].Text())
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Unmatched)
}

func TestMerge_EmptyNamesNeverMatch(t *testing.T) {
	primary := parse(t, `<Stations><Station><StationName/></Station></Stations>`)
	secondary := parse(t, `<stations><station><name></name><phone>x</phone></station></stations>`)

	merged, stats := Merge(primary, "//Station/StationName", secondary, "//station/name")

	assert.Nil(t, merged.FindElement("//Station/phone"))
	assert.Equal(t, 0, stats.Matched)
}

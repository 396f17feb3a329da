package tfl

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		StationName,
		StationHasToilet,
		StationHasContactDetail,
		StationServesLine,
		StationBelongsToZone,
		StationHasPlacemark,
		StationHasLineConnection,
		StationHasNaptan,
		StationHasEntrance,
		ToiletLocation,
		ToiletPaymentRequired,
		ContactAddress,
		ContactTelephone,
		ConnectionLine,
		ConnectionManualRamp,
		EntranceName,
		EntranceToBookingHall,
		BookingHallPath,
		PlatformToTrainSteps,
	}

	for _, pred := range predicates {
		t.Run(pred, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(pred)
			if meta == nil {
				t.Fatalf("predicate %s not registered", pred)
			}
			if meta.Description == "" {
				t.Errorf("predicate %s missing description", pred)
			}
		})
	}
}

func TestPredicateIRIMappings(t *testing.T) {
	tests := []struct {
		predicate   string
		expectedIRI string
	}{
		{StationName, SchemaName},
		{StationHasToilet, Namespace + "hasToilet"},
		{ToiletLocation, SchemaLocation},
		{ToiletPaymentRequired, Namespace + "paymentRequired"},
		{ContactAddress, SchemaAddress},
		{ContactTelephone, SchemaTelephone},
		{LineDescription, SchemaDescription},
		{ConnectionPlatform, Namespace + "platformNumber"},
		{EntranceToBookingHall, Namespace + "hasEntranceToBookingHall"},
		{PlatformToTrainTrain, Namespace + "train"},
	}

	for _, tt := range tests {
		t.Run(tt.predicate, func(t *testing.T) {
			if got := PredicateIRI(tt.predicate); got != tt.expectedIRI {
				t.Errorf("predicate %s: expected IRI %s, got %s", tt.predicate, tt.expectedIRI, got)
			}
		})
	}
}

func TestPredicateIRIFallback(t *testing.T) {
	if got := PredicateIRI("tfl.unknown.thing"); got != Namespace+"tfl.unknown.thing" {
		t.Errorf("unexpected fallback IRI %s", got)
	}
}

func TestFlagLookups(t *testing.T) {
	t.Run("facility", func(t *testing.T) {
		key, ok := FacilityPredicate(" Ticket Halls ")
		if !ok {
			t.Fatal("Ticket Halls should be mapped")
		}
		if got := PredicateIRI(key); got != Namespace+"hasTicketHalls" {
			t.Errorf("unexpected IRI %s", got)
		}
		if _, ok := FacilityPredicate("Ball Pit"); ok {
			t.Error("unknown facility should not be mapped")
		}
	})

	t.Run("accessibility", func(t *testing.T) {
		key, ok := AccessibilityPredicate("AccessViaLift")
		if !ok {
			t.Fatal("AccessViaLift should be mapped")
		}
		if got := PredicateIRI(key); got != Namespace+"hasAccessViaLift" {
			t.Errorf("unexpected IRI %s", got)
		}
	})

	t.Run("interchange", func(t *testing.T) {
		key, ok := InterchangePredicate("NationalRailInterchange")
		if !ok {
			t.Fatal("NationalRailInterchange should be mapped")
		}
		if got := PredicateIRI(key); got != Namespace+"hasNationalRailInterchange" {
			t.Errorf("unexpected IRI %s", got)
		}
	})
}

func TestFlagPredicatesUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, group := range [][]flagPredicate{facilityPredicates, accessibilityPredicates, interchangePredicates} {
		for _, f := range group {
			iri := Namespace + f.local
			if other, ok := seen[iri]; ok {
				t.Errorf("IRI %s used by both %s and %s", iri, other, f.key)
			}
			seen[iri] = f.key
		}
	}
}

func TestDerivedPredicateIRI(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Car park", Namespace + "hasCarpark"},
		{"{ELRAD}StepFreeInterchange", Namespace + "hasStepFreeInterchange"},
		{"er:Lift", Namespace + "hasLift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DerivedPredicateIRI(tt.name); got != tt.want {
				t.Errorf("DerivedPredicateIRI(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

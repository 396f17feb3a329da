package tfl

import (
	"strings"

	"github.com/c360studio/semstreams/vocabulary"
)

// flagPredicate describes one source name that maps to a "has..." predicate.
type flagPredicate struct {
	source      string
	key         string
	local       string
	description string
}

// Facility predicates, keyed in the feed by the facility "name" attribute.
// The facility element text (usually a count or "yes") is the object.
var facilityPredicates = []flagPredicate{
	{"Ticket Halls", "tfl.facility.ticket_halls", "hasTicketHalls", "Number of ticket halls"},
	{"Lifts", "tfl.facility.lifts", "hasLifts", "Number of lifts"},
	{"Escalators", "tfl.facility.escalators", "hasEscalators", "Number of escalators"},
	{"Gates", "tfl.facility.gates", "hasGates", "Number of ticket gates"},
	{"Toilets", "tfl.facility.toilets", "hasToilets", "Toilets available"},
	{"Photo Booths", "tfl.facility.photo_booths", "hasPhotoBooths", "Number of photo booths"},
	{"Cash Machines", "tfl.facility.cash_machines", "hasCashMachines", "Number of cash machines"},
	{"Payphones", "tfl.facility.payphones", "hasPayphones", "Number of payphones"},
	{"Car park", "tfl.facility.car_park", "hasCarpark", "Car park available"},
	{"Vending Machines", "tfl.facility.vending_machines", "hasVendingMachines", "Number of vending machines"},
	{"Help Points", "tfl.facility.help_points", "hasHelpPoints", "Number of help points"},
	{"Bridge", "tfl.facility.bridge", "hasBridge", "Footbridge available"},
	{"Waiting Room", "tfl.facility.waiting_room", "hasWaitingRoom", "Waiting room available"},
	{"Other Facilities", "tfl.facility.other", "hasOtherFacilities", "Other facilities"},
}

// Accessibility predicates, keyed by child element tag of Accessibility.
var accessibilityPredicates = []flagPredicate{
	{"AccessibilityType", "tfl.accessibility.type", "hasAccessibilityType", "Step-free access classification"},
	{"AccessViaLift", "tfl.accessibility.via_lift", "hasAccessViaLift", "Step-free access requires a lift"},
	{"LimitedCapacityLift", "tfl.accessibility.limited_capacity_lift", "hasLimitedCapacityLift", "Lift has limited capacity"},
	{"AccessibleToilet", "tfl.accessibility.toilet", "hasAccessibleToilet", "Accessible toilet available"},
	{"AccessibleToiletNote", "tfl.accessibility.toilet_note", "hasAccessibleToiletNote", "Accessible toilet notes"},
	{"SpecificEntranceRequired", "tfl.accessibility.specific_entrance_required", "hasSpecificEntranceRequired", "Step-free access needs a specific entrance"},
	{"SpecificEntranceInstructions", "tfl.accessibility.specific_entrance_instructions", "hasSpecificEntranceInstructions", "How to reach the step-free entrance"},
	{"AdditionalAccessibilityInformation", "tfl.accessibility.additional_information", "hasAdditionalAccessibilityInformation", "Free-text accessibility notes"},
}

// Interchange predicates, keyed by child element tag of
// AccessibleInterchanges. Their object is always the literal "yes".
var interchangePredicates = []flagPredicate{
	{"BusInterchange", "tfl.interchange.bus", "hasBusInterchange", "Accessible bus interchange"},
	{"NationalRailInterchange", "tfl.interchange.national_rail", "hasNationalRailInterchange", "Accessible National Rail interchange"},
	{"OvergroundInterchange", "tfl.interchange.overground", "hasOvergroundInterchange", "Accessible Overground interchange"},
	{"ElizabethLineInterchange", "tfl.interchange.elizabeth_line", "hasElizabethLineInterchange", "Accessible Elizabeth line interchange"},
	{"DLRInterchange", "tfl.interchange.dlr", "hasDLRInterchange", "Accessible DLR interchange"},
	{"TramlinkInterchange", "tfl.interchange.tramlink", "hasTramlinkInterchange", "Accessible Tramlink interchange"},
	{"RiverBusInterchange", "tfl.interchange.river_bus", "hasRiverBusInterchange", "Accessible river bus interchange"},
	{"CoachInterchange", "tfl.interchange.coach", "hasCoachInterchange", "Accessible coach interchange"},
	{"AirportInterchange", "tfl.interchange.airport", "hasAirportInterchange", "Accessible airport interchange"},
	{"EmiratesAirLineInterchange", "tfl.interchange.cable_car", "hasEmiratesAirLineInterchange", "Accessible cable car interchange"},
}

// InterchangeSuffix is the tag suffix that marks an interchange flag.
const InterchangeSuffix = "Interchange"

// InterchangeValue is the literal object of every interchange flag.
const InterchangeValue = "yes"

var (
	facilityIndex      = indexFlags(facilityPredicates)
	accessibilityIndex = indexFlags(accessibilityPredicates)
	interchangeIndex   = indexFlags(interchangePredicates)
)

func indexFlags(flags []flagPredicate) map[string]string {
	idx := make(map[string]string, len(flags))
	for _, f := range flags {
		idx[f.source] = f.key
	}
	return idx
}

func registerFlagPredicates() {
	for _, group := range [][]flagPredicate{facilityPredicates, accessibilityPredicates, interchangePredicates} {
		for _, f := range group {
			vocabulary.Register(f.key,
				vocabulary.WithDescription(f.description),
				vocabulary.WithDataType("string"),
				vocabulary.WithIRI(Namespace+f.local))
		}
	}
}

// FacilityPredicate returns the predicate key for a facility name attribute.
func FacilityPredicate(name string) (string, bool) {
	key, ok := facilityIndex[strings.TrimSpace(name)]
	return key, ok
}

// AccessibilityPredicate returns the predicate key for an Accessibility
// child tag.
func AccessibilityPredicate(tag string) (string, bool) {
	key, ok := accessibilityIndex[tag]
	return key, ok
}

// InterchangePredicate returns the predicate key for an
// AccessibleInterchanges child tag.
func InterchangePredicate(tag string) (string, bool) {
	key, ok := interchangeIndex[tag]
	return key, ok
}

// DerivedPredicateIRI builds the legacy "has<Name>" IRI for a source name
// missing from the lookup tables. Spaces are dropped and any namespace
// prefix is removed.
func DerivedPredicateIRI(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '}'); i >= 0 {
		name = name[i+1:]
	}
	return Namespace + "has" + strings.Join(strings.Fields(name), "")
}

package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

type processor struct {
	name string
	fn   func(c *Context, st *etree.Element) error
}

// stationProcessors run in order for every station after its name triple.
var stationProcessors = []processor{
	{"toilets", processToilets},
	{"contact details", processContactDetails},
	{"serving lines", processServingLines},
	{"zones", processZones},
	{"facilities", processFacilities},
	{"placemarks", processPlacemarks},
	{"line connections", processLineConnections},
	{"accessible interchanges", processInterchanges},
	{"naptans", processNaptans},
	{"accessibility", processAccessibility},
	{"entrances", processEntrances},
}

// localNode returns a blank node scoped to the current station.
func (c *Context) localNode(tag string, index int) graph.Term {
	return graph.Blank(graph.BlankID(c.Key, tag, strconv.Itoa(index)))
}

func processToilets(c *Context, st *etree.Element) error {
	for i, toilet := range st.SelectElements("PublicToilet") {
		node := c.localNode("Toilet", i)
		c.Emit(toilet, "Location", Const(node), Predicate(tfl.ToiletLocation), TextLiteral)
		c.Emit(toilet, "PaymentRequired", Const(node), Predicate(tfl.ToiletPaymentRequired), TextLiteral)
		c.Add(c.Station, predicateIRI(tfl.StationHasToilet), node)
	}
	return nil
}

func processContactDetails(c *Context, st *etree.Element) error {
	for i, details := range st.SelectElements("contactDetails") {
		node := c.localNode("ContactDetail", i)
		c.Emit(details, "address", Const(node), Predicate(tfl.ContactAddress), TextLiteral)
		c.Emit(details, "phone", Const(node), Predicate(tfl.ContactTelephone), TextLiteral)
		c.Add(c.Station, predicateIRI(tfl.StationHasContactDetail), node)
	}
	return nil
}

// sharedNode adds the description of a node shared across stations, such
// as a line or zone, and returns it. Empty names yield the zero term.
func (c *Context) sharedNode(prefix, descriptionKey, name string) graph.Term {
	if name == "" {
		return graph.Term{}
	}
	node := graph.Blank(graph.BlankID(prefix, name))
	c.Add(node, predicateIRI(descriptionKey), graph.Literal(name))
	return node
}

func processServingLines(c *Context, st *etree.Element) error {
	c.Emit(st, "servingLines/servingLine", c.StationValue(), Predicate(tfl.StationServesLine),
		Derive(func(el *etree.Element) graph.Term {
			return c.sharedNode("Line", tfl.LineDescription, text(el))
		}))
	return nil
}

func processZones(c *Context, st *etree.Element) error {
	c.Emit(st, "zones/zone", c.StationValue(), Predicate(tfl.StationBelongsToZone),
		Derive(func(el *etree.Element) graph.Term {
			return c.sharedNode("Zone", tfl.ZoneDescription, text(el))
		}))
	return nil
}

func processFacilities(c *Context, st *etree.Element) error {
	c.Emit(st, "facilities/facility", c.StationValue(),
		Derive(func(el *etree.Element) graph.Term {
			name := strings.TrimSpace(el.SelectAttrValue("name", ""))
			if name == "" {
				return graph.Term{}
			}
			return c.mapper.flagPredicate("facility", name, tfl.FacilityPredicate)
		}),
		TextLiteral)
	return nil
}

func processPlacemarks(c *Context, st *etree.Element) error {
	for i, pm := range st.SelectElements("Placemark") {
		node := c.localNode("Placemark", i)
		subject := Const(node)
		c.Emit(pm, "name", subject, Predicate(tfl.PlacemarkName), TextLiteral)
		c.Emit(pm, "description", subject, Predicate(tfl.PlacemarkDescription), TextLiteral)
		c.Emit(pm, "Point/coordinates", subject, Predicate(tfl.PlacemarkCoordinates), TextLiteral)
		c.Emit(pm, "styleUrl", subject, Predicate(tfl.PlacemarkStyleURL), TextLiteral)
		c.Add(c.Station, predicateIRI(tfl.StationHasPlacemark), node)
	}
	return nil
}

// connectionFields maps the optional children of a Lines/Line element.
var connectionFields = []struct {
	tag string
	key string
}{
	{"Platform", tfl.ConnectionPlatform},
	{"Direction", tfl.ConnectionDirection},
	{"DirectionTowards", tfl.ConnectionDirectionTowards},
	{"StepMin", tfl.ConnectionMinSteps},
	{"StepMax", tfl.ConnectionMaxSteps},
	{"GapMin", tfl.ConnectionMinGap},
	{"GapMax", tfl.ConnectionMaxGap},
	{"LevelAccessByManualRamp", tfl.ConnectionManualRamp},
	{"LocationOfLevelAccess", tfl.ConnectionLevelAccessLocation},
}

func processLineConnections(c *Context, st *etree.Element) error {
	for i, line := range st.FindElements("Lines/Line") {
		name := text(line.SelectElement("LineName"))
		if name == "" {
			return fmt.Errorf("line %d: %w: LineName", i, ErrMissingField)
		}

		node := c.localNode("LineConnection", i)
		c.Add(node, predicateIRI(tfl.ConnectionLine), c.sharedNode("Line", tfl.LineDescription, name))
		for _, f := range connectionFields {
			c.Emit(line, f.tag, Const(node), Predicate(f.key), TextLiteral)
		}
		c.Add(c.Station, predicateIRI(tfl.StationHasLineConnection), node)
	}
	return nil
}

func processInterchanges(c *Context, st *etree.Element) error {
	interchanges := st.SelectElement("AccessibleInterchanges")
	if interchanges == nil {
		return fmt.Errorf("%w: AccessibleInterchanges", ErrMissingField)
	}
	c.Emit(interchanges, "*", c.StationValue(),
		Derive(func(el *etree.Element) graph.Term {
			if !strings.HasSuffix(el.Tag, tfl.InterchangeSuffix) {
				return graph.Term{}
			}
			return c.mapper.flagPredicate("interchange", el.Tag, tfl.InterchangePredicate)
		}),
		Const(graph.Literal(tfl.InterchangeValue)))
	return nil
}

func processNaptans(c *Context, st *etree.Element) error {
	naptans := st.SelectElement("Naptans")
	if naptans == nil {
		return fmt.Errorf("%w: Naptans", ErrMissingField)
	}
	for i, naptan := range naptans.SelectElements("Naptan") {
		id := text(naptan.SelectElement("NaptanID"))
		if id == "" {
			return fmt.Errorf("naptan %d: %w: NaptanID", i, ErrMissingField)
		}
		node := graph.Blank(graph.BlankID("naptan_", id))
		c.Emit(naptan, "Description", Const(node), Predicate(tfl.NaptanDescription), TextLiteral)
		c.Add(c.Station, predicateIRI(tfl.StationHasNaptan), node)
	}
	return nil
}

func processAccessibility(c *Context, st *etree.Element) error {
	access := st.SelectElement("Accessibility")
	if access == nil {
		return fmt.Errorf("%w: Accessibility", ErrMissingField)
	}
	c.Emit(access, "*", c.StationValue(),
		Derive(func(el *etree.Element) graph.Term {
			return c.mapper.flagPredicate("accessibility", el.Tag, tfl.AccessibilityPredicate)
		}),
		TextLiteral)
	return nil
}

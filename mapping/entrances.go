package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

// entranceNamespace scopes the name-based entrance identifiers.
var entranceNamespace = uuid.NewMD5(uuid.NameSpaceURL, []byte(tfl.Namespace+"entrance"))

// EntranceID returns the stable identifier of a named entrance at a
// station.
func EntranceID(stationKey, name string) string {
	id := uuid.NewMD5(entranceNamespace, []byte(stationKey+"/"+name))
	return "entrance_" + strings.ReplaceAll(id.String(), "-", "")
}

// processEntrances maps the optional entrances list of a station.
func processEntrances(c *Context, st *etree.Element) error {
	list := st.SelectElement("entrances")
	if list == nil {
		return nil
	}
	for i, entrance := range list.SelectElements("entrance") {
		if err := processEntrance(c, entrance); err != nil {
			return fmt.Errorf("entrance %d: %w", i, err)
		}
	}
	return nil
}

func processEntrance(c *Context, entrance *etree.Element) error {
	name := text(entrance.SelectElement("name"))
	if name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	id := EntranceID(c.Key, name)
	node := graph.Blank(id)
	subject := Const(node)
	c.Emit(entrance, "name", subject, Predicate(tfl.EntranceName), TextLiteral)
	c.Emit(entrance, "entranceToBookingHall", subject, Predicate(tfl.EntranceToBookingHall), TextLiteral)

	for i, hall := range entrance.SelectElements("bookingHallToPlatform") {
		hallNode := graph.Blank(graph.BlankID(id, "BookingHallToPlatform", strconv.Itoa(i)))
		mapBookingHall(c, hall, hallNode)
		c.Add(node, predicateIRI(tfl.EntranceHasBookingHallToPlatform), hallNode)
	}

	for i, platform := range entrance.SelectElements("platformToTrain") {
		platformNode := graph.Blank(graph.BlankID(id, "PlatformToTrain", strconv.Itoa(i)))
		mapPlatformToTrain(c, platform, platformNode)
		c.Add(node, predicateIRI(tfl.EntranceHasPlatformToTrain), platformNode)
	}

	c.Add(c.Station, predicateIRI(tfl.StationHasEntrance), node)
	return nil
}

func mapBookingHall(c *Context, hall *etree.Element, node graph.Term) {
	subject := Const(node)
	c.Emit(hall, "pointName", subject, Predicate(tfl.BookingHallPointName), TextLiteral)
	c.Emit(hall, "pathDescription", subject, Predicate(tfl.BookingHallPathDescription), TextLiteral)

	for i, path := range hall.SelectElements("path") {
		pathNode := graph.Blank(graph.BlankID(node.Value, "Path", strconv.Itoa(i)))
		c.Emit(path, "heading", Const(pathNode), Predicate(tfl.PathHeading), TextLiteral)
		c.Emit(path, "pathDescription", Const(pathNode), Predicate(tfl.PathDescription), TextLiteral)
		c.Add(node, predicateIRI(tfl.BookingHallPath), pathNode)
	}
}

func mapPlatformToTrain(c *Context, platform *etree.Element, node graph.Term) {
	subject := Const(node)
	// A missing or empty train name yields no train triple.
	c.Emit(platform, "trainName", subject, Predicate(tfl.PlatformToTrainTrain),
		Derive(func(el *etree.Element) graph.Term {
			return c.sharedNode("train_", tfl.TrainName, text(el))
		}))
	c.Emit(platform, "platformToTrainSteps", subject, Predicate(tfl.PlatformToTrainSteps), TextLiteral)
}

package tfl

import "github.com/c360studio/semstreams/vocabulary"

// Station predicates link a station resource to its literals and parts.
const (
	// StationName is the display name of the station.
	StationName = "tfl.station.name"

	// StationHasToilet links a station to a public toilet entity.
	StationHasToilet = "tfl.station.has_toilet"

	// StationHasContactDetail links a station to a contact detail entity.
	StationHasContactDetail = "tfl.station.has_contact_detail"

	// StationServesLine links a station to a shared line node.
	StationServesLine = "tfl.station.serves_line"

	// StationBelongsToZone links a station to a shared fare zone node.
	StationBelongsToZone = "tfl.station.belongs_to_zone"

	// StationHasPlacemark links a station to a map placemark entity.
	StationHasPlacemark = "tfl.station.has_placemark"

	// StationHasLineConnection links a station to a per-line accessibility entry.
	StationHasLineConnection = "tfl.station.has_line_connection"

	// StationHasNaptan links a station to a NaPTAN stop reference.
	StationHasNaptan = "tfl.station.has_naptan"

	// StationHasEntrance links a station to an entrance entity.
	StationHasEntrance = "tfl.station.has_entrance"
)

// Toilet and contact detail predicates.
const (
	ToiletLocation        = "tfl.toilet.location"
	ToiletPaymentRequired = "tfl.toilet.payment_required"

	ContactAddress   = "tfl.contact.address"
	ContactTelephone = "tfl.contact.telephone"
)

// Shared node predicates for lines, zones, NaPTANs and trains.
const (
	LineDescription   = "tfl.line.description"
	ZoneDescription   = "tfl.zone.description"
	NaptanDescription = "tfl.naptan.description"
	TrainName         = "tfl.train.name"
)

// Placemark predicates.
const (
	PlacemarkName        = "tfl.placemark.name"
	PlacemarkDescription = "tfl.placemark.description"
	PlacemarkCoordinates = "tfl.placemark.coordinates"
	PlacemarkStyleURL    = "tfl.placemark.style_url"
)

// Line connection predicates describe step-free access per line and
// platform.
const (
	// ConnectionLine links a line connection to the shared line node.
	ConnectionLine = "tfl.connection.line"

	ConnectionPlatform            = "tfl.connection.platform"
	ConnectionDirection           = "tfl.connection.direction"
	ConnectionDirectionTowards    = "tfl.connection.direction_towards"
	ConnectionMinSteps            = "tfl.connection.min_steps"
	ConnectionMaxSteps            = "tfl.connection.max_steps"
	ConnectionMinGap              = "tfl.connection.min_gap"
	ConnectionMaxGap              = "tfl.connection.max_gap"
	ConnectionManualRamp          = "tfl.connection.manual_ramp"
	ConnectionLevelAccessLocation = "tfl.connection.level_access_location"
)

// Entrance predicates, including the nested booking-hall-to-platform paths
// and platform-to-train step counts.
const (
	EntranceName                     = "tfl.entrance.name"
	EntranceToBookingHall            = "tfl.entrance.to_booking_hall"
	EntranceHasBookingHallToPlatform = "tfl.entrance.has_booking_hall_to_platform"
	EntranceHasPlatformToTrain       = "tfl.entrance.has_platform_to_train"

	BookingHallPointName       = "tfl.booking_hall.point_name"
	BookingHallPathDescription = "tfl.booking_hall.path_description"
	BookingHallPath            = "tfl.booking_hall.path"

	PathHeading     = "tfl.path.heading"
	PathDescription = "tfl.path.description"

	PlatformToTrainTrain = "tfl.platform_to_train.train"
	PlatformToTrainSteps = "tfl.platform_to_train.steps"
)

func registerStationPredicates() {
	vocabulary.Register(StationName,
		vocabulary.WithDescription("Display name of the station"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaName))

	vocabulary.Register(StationHasToilet,
		vocabulary.WithDescription("Public toilet available at the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasToilet"))

	vocabulary.Register(StationHasContactDetail,
		vocabulary.WithDescription("Contact detail block of the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasContactDetail"))

	vocabulary.Register(StationServesLine,
		vocabulary.WithDescription("Line served by the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"servesLine"))

	vocabulary.Register(StationBelongsToZone,
		vocabulary.WithDescription("Fare zone the station belongs to"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"belongsToZone"))

	vocabulary.Register(StationHasPlacemark,
		vocabulary.WithDescription("Map placemark of the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasPlacemark"))

	vocabulary.Register(StationHasLineConnection,
		vocabulary.WithDescription("Step-free access details for one line and platform"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasLineConnection"))

	vocabulary.Register(StationHasNaptan,
		vocabulary.WithDescription("NaPTAN stop point referenced by the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasNaptan"))

	vocabulary.Register(StationHasEntrance,
		vocabulary.WithDescription("Entrance of the station"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasEntrance"))
}

func registerDetailPredicates() {
	vocabulary.Register(ToiletLocation,
		vocabulary.WithDescription("Where the toilet is located"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaLocation))

	vocabulary.Register(ToiletPaymentRequired,
		vocabulary.WithDescription("Whether using the toilet requires payment"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"paymentRequired"))

	vocabulary.Register(ContactAddress,
		vocabulary.WithDescription("Postal address"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaAddress))

	vocabulary.Register(ContactTelephone,
		vocabulary.WithDescription("Telephone number"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaTelephone))

	vocabulary.Register(LineDescription,
		vocabulary.WithDescription("Name of a line"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	vocabulary.Register(ZoneDescription,
		vocabulary.WithDescription("Name of a fare zone"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	vocabulary.Register(NaptanDescription,
		vocabulary.WithDescription("Description of a NaPTAN stop point"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	vocabulary.Register(TrainName,
		vocabulary.WithDescription("Name of a train service"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaName))

	vocabulary.Register(PlacemarkName,
		vocabulary.WithDescription("Placemark label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaName))

	vocabulary.Register(PlacemarkDescription,
		vocabulary.WithDescription("Placemark description"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	vocabulary.Register(PlacemarkCoordinates,
		vocabulary.WithDescription("KML point coordinates (lon,lat,alt)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasCoordinates"))

	vocabulary.Register(PlacemarkStyleURL,
		vocabulary.WithDescription("KML style reference"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasStyleUrl"))
}

func registerConnectionPredicates() {
	vocabulary.Register(ConnectionLine,
		vocabulary.WithDescription("Line this connection describes"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"lineDetail"))

	vocabulary.Register(ConnectionPlatform,
		vocabulary.WithDescription("Platform number"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"platformNumber"))

	vocabulary.Register(ConnectionDirection,
		vocabulary.WithDescription("Direction of travel"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"direction"))

	vocabulary.Register(ConnectionDirectionTowards,
		vocabulary.WithDescription("Destination the direction heads towards"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"directionTowards"))

	vocabulary.Register(ConnectionMinSteps,
		vocabulary.WithDescription("Minimum step height from platform to train"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasMinSteps"))

	vocabulary.Register(ConnectionMaxSteps,
		vocabulary.WithDescription("Maximum step height from platform to train"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasMaxSteps"))

	vocabulary.Register(ConnectionMinGap,
		vocabulary.WithDescription("Minimum horizontal gap from platform to train"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasMinGap"))

	vocabulary.Register(ConnectionMaxGap,
		vocabulary.WithDescription("Maximum horizontal gap from platform to train"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasMaxGap"))

	vocabulary.Register(ConnectionManualRamp,
		vocabulary.WithDescription("Level access available by manual ramp"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasLevelAccessByManualRamp"))

	vocabulary.Register(ConnectionLevelAccessLocation,
		vocabulary.WithDescription("Where on the platform level access is found"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"locationOfLevelAccess"))
}

func registerEntrancePredicates() {
	vocabulary.Register(EntranceName,
		vocabulary.WithDescription("Entrance name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaName))

	vocabulary.Register(EntranceToBookingHall,
		vocabulary.WithDescription("Route from the entrance to the booking hall"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasEntranceToBookingHall"))

	vocabulary.Register(EntranceHasBookingHallToPlatform,
		vocabulary.WithDescription("Route from the booking hall to a platform"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasBookingHallToPlatform"))

	vocabulary.Register(EntranceHasPlatformToTrain,
		vocabulary.WithDescription("Step information from a platform to a train"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasPlatformToTrain"))

	vocabulary.Register(BookingHallPointName,
		vocabulary.WithDescription("Platform or point the route leads to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"pointName"))

	vocabulary.Register(BookingHallPathDescription,
		vocabulary.WithDescription("Summary of the booking hall route"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"pathDescription"))

	vocabulary.Register(BookingHallPath,
		vocabulary.WithDescription("One segment of the booking hall route"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"path"))

	vocabulary.Register(PathHeading,
		vocabulary.WithDescription("Heading of a route segment"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"heading"))

	vocabulary.Register(PathDescription,
		vocabulary.WithDescription("Description of a route segment"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"pathDescription"))

	vocabulary.Register(PlatformToTrainTrain,
		vocabulary.WithDescription("Train service boarded from the platform"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"train"))

	vocabulary.Register(PlatformToTrainSteps,
		vocabulary.WithDescription("Steps between platform and train"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"steps"))
}

func init() {
	registerStationPredicates()
	registerDetailPredicates()
	registerConnectionPredicates()
	registerEntrancePredicates()
	registerFlagPredicates()
}

// PredicateIRI returns the IRI registered for a predicate key.
// Falls back to the tfl namespace for keys with no registered IRI.
func PredicateIRI(key string) string {
	if meta := vocabulary.GetPredicateMetadata(key); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + key
}

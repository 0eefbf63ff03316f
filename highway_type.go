package osm2map

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PATH
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_CORRIDOR
	HIGHWAY_ELEVATOR
	HIGHWAY_BRIDLEWAY
	HIGHWAY_PLATFORM
	HIGHWAY_BUS_STOP
	HIGHWAY_CONSTRUCTION
	HIGHWAY_PROPOSED
	HIGHWAY_RACEWAY
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "unclassified", "cycleway", "footway", "path", "pedestrian", "steps", "track", "corridor", "elevator", "bridleway", "platform", "bus_stop", "construction", "proposed", "raceway"}[iotaIdx-1]
}

const (
	// Width of single lane when `lanes` tag is known
	DEFAULT_LANE_WIDTH = 3.25
	// Width of road of unknown type (same as `unclassified`)
	DEFAULT_ROAD_WIDTH = 4.0
	DEFAULT_SPEED      = 50
	DEFAULT_LANES      = 1
)

var (
	defaultWidthByHighway = map[HighwayType]float64{
		HIGHWAY_MOTORWAY:       15.0,
		HIGHWAY_TRUNK:          10.0,
		HIGHWAY_PRIMARY:        8.0,
		HIGHWAY_PRIMARY_LINK:   8.0,
		HIGHWAY_SECONDARY:      7.0,
		HIGHWAY_SECONDARY_LINK: 7.0,
		HIGHWAY_TERTIARY:       6.0,
		HIGHWAY_RESIDENTIAL:    5.0,
		HIGHWAY_LIVING_STREET:  5.0,
		HIGHWAY_SERVICE:        4.0,
		HIGHWAY_UNCLASSIFIED:   4.0,
	}
)

// defaultRoadWidths returns width table keyed by `highway` tag value
func defaultRoadWidths() map[string]float64 {
	widths := make(map[string]float64, len(defaultWidthByHighway))
	for highway, width := range defaultWidthByHighway {
		widths[highway.String()] = width
	}
	return widths
}

// defaultExcludedRoads returns excluded `highway` tag values
func defaultExcludedRoads() []string {
	excluded := make([]string, 0, len(excludedHighwayTypes))
	for _, highway := range excludedHighwayTypes {
		excluded = append(excluded, highway.String())
	}
	return excluded
}

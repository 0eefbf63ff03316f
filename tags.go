package osm2map

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	onewayForward = map[string]struct{}{
		"yes":  {},
		"true": {},
		"1":    {},
	}

	onewayTwoWay = map[string]struct{}{
		"no":    {},
		"false": {},
		"0":     {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	controlTypeByHighway = map[string]ControlType{
		"traffic_signals": CONTROL_SIGNAL,
		"stop":            CONTROL_STOP,
	}

	buildingKeys = []string{
		"building",
		"building:part",
	}

	buildingBarriers = map[string]struct{}{
		"wall": {},
	}

	// Default set of `highway` values which are never drivable
	excludedHighwayTypes = []HighwayType{
		HIGHWAY_FOOTWAY,
		HIGHWAY_PATH,
		HIGHWAY_STEPS,
		HIGHWAY_PEDESTRIAN,
		HIGHWAY_TRACK,
		HIGHWAY_CYCLEWAY,
		HIGHWAY_CORRIDOR,
		HIGHWAY_ELEVATOR,
		HIGHWAY_BRIDLEWAY,
		HIGHWAY_PLATFORM,
		HIGHWAY_BUS_STOP,
		HIGHWAY_CONSTRUCTION,
		HIGHWAY_PROPOSED,
		HIGHWAY_RACEWAY,
	}
)

package osm2map

import (
	"github.com/paulmach/osm"
)

type AreaType uint16

const (
	AREA_PARK = AreaType(iota)
	AREA_WATER
)

func (iotaIdx AreaType) String() string {
	return [...]string{"park", "water"}[iotaIdx]
}

var (
	parkLeisure = map[string]struct{}{
		"park":   {},
		"garden": {},
		"pitch":  {},
	}
	parkLanduse = map[string]struct{}{
		"grass":         {},
		"village_green": {},
		"meadow":        {},
		"forest":        {},
	}
	parkNatural = map[string]struct{}{
		"wood": {},
	}
	waterNatural = map[string]struct{}{
		"water": {},
	}
	waterLanduse = map[string]struct{}{
		"basin":     {},
		"reservoir": {},
	}
)

func inTagSet(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

// areaTypeFromTags classifies nature polygon. Second value is false for any other polygon
func areaTypeFromTags(tags osm.Tags) (AreaType, bool) {
	leisure := tags.Find("leisure")
	landuse := tags.Find("landuse")
	natural := tags.Find("natural")
	switch {
	case inTagSet(parkLeisure, leisure), inTagSet(parkLanduse, landuse), inTagSet(parkNatural, natural):
		return AREA_PARK, true
	case inTagSet(waterNatural, natural), inTagSet(waterLanduse, landuse):
		return AREA_WATER, true
	default:
		return AREA_PARK, false
	}
}

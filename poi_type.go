package osm2map

import (
	"github.com/paulmach/osm"
)

// POIType is the category of point of interest. Values are written as is to the output
type POIType uint16

const (
	POI_NONE = POIType(iota)
	POI_FUEL
	POI_FAST_FOOD
	POI_CAFE
	POI_BAR
	POI_MARKET
	POI_SUPERMARKET
	POI_RESTAURANT
)

func (iotaIdx POIType) String() string {
	return [...]string{"none", "fuel", "fast_food", "cafe", "bar", "market", "supermarket", "restaurant"}[iotaIdx]
}

var (
	amenityPOITypes = map[string]POIType{
		"fast_food":  POI_FAST_FOOD,
		"cafe":       POI_CAFE,
		"bar":        POI_BAR,
		"pub":        POI_BAR,
		"restaurant": POI_RESTAURANT,
		"fuel":       POI_FUEL,
	}
	shopPOITypes = map[string]POIType{
		"convenience": POI_MARKET,
		"supermarket": POI_SUPERMARKET,
	}
)

// poiTypeFromTags returns category for given tags. `amenity` wins over `shop`
func poiTypeFromTags(tags osm.Tags) POIType {
	if poiType, ok := amenityPOITypes[tags.Find("amenity")]; ok {
		return poiType
	}
	if poiType, ok := shopPOITypes[tags.Find("shop")]; ok {
		return poiType
	}
	return POI_NONE
}

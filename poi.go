package osm2map

import (
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/paulmach/osm"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const minPOINameLength = 2

// POI is a labeled marker
type POI struct {
	Type POIType
	Geom orb.Point
	Name string
}

// Point implements orb.Pointer so POIs can be stored in quadtree
func (poi *POI) Point() orb.Point {
	return poi.Geom
}

// PoiVerdict is the result of offering a candidate to POIDeduplicator
type PoiVerdict uint16

const (
	POI_ACCEPTED = PoiVerdict(iota + 1)
	POI_REJECTED_CATEGORY
	POI_REJECTED_NAME
	POI_DUPLICATE
)

func (iotaIdx PoiVerdict) String() string {
	return [...]string{"accepted", "rejected_category", "rejected_name", "duplicate"}[iotaIdx-1]
}

// POIDeduplicator accepts candidates in offering order. A candidate closer than minimum
// distance (strictly) to any accepted POI is dropped: the first accepted one wins.
type POIDeduplicator struct {
	minDistance  float64
	placeholders []string
	pois         []*POI
	tree         *quadtree.Quadtree
	// Accepted POIs which do not fit into tree bound
	outside []*POI
}

// NewPOIDeduplicator returns deduplicator. Bound should cover expected candidates: others are
// checked by linear scan
func NewPOIDeduplicator(bound orb.Bound, minDistance float64, placeholders []string) *POIDeduplicator {
	if bound.IsEmpty() {
		bound = orb.Bound{}
	}
	return &POIDeduplicator{
		minDistance:  minDistance,
		placeholders: placeholders,
		pois:         make([]*POI, 0),
		tree:         quadtree.New(bound.Pad(minDistance)),
		outside:      make([]*POI, 0),
	}
}

// Offer validates candidate and stores it when accepted. Returns index of accepted POI or -1
func (dedup *POIDeduplicator) Offer(poiType POIType, pt orb.Point, name string) (int, PoiVerdict) {
	if poiType == POI_NONE {
		return -1, POI_REJECTED_CATEGORY
	}
	name = sanitizeName(name)
	if !dedup.validName(name) {
		return -1, POI_REJECTED_NAME
	}
	if dedup.hasNeighbour(pt) {
		return -1, POI_DUPLICATE
	}
	poi := &POI{
		Type: poiType,
		Geom: pt,
		Name: name,
	}
	if err := dedup.tree.Add(poi); err != nil {
		dedup.outside = append(dedup.outside, poi)
	}
	dedup.pois = append(dedup.pois, poi)
	return len(dedup.pois) - 1, POI_ACCEPTED
}

// POIs returns accepted POIs in acceptance order
func (dedup *POIDeduplicator) POIs() []*POI {
	return dedup.pois
}

func (dedup *POIDeduplicator) validName(name string) bool {
	if len(name) < minPOINameLength {
		return false
	}
	for _, placeholder := range dedup.placeholders {
		if placeholder != "" && strings.Contains(name, placeholder) {
			return false
		}
	}
	return true
}

func (dedup *POIDeduplicator) hasNeighbour(pt orb.Point) bool {
	if nearest := dedup.tree.Find(pt); nearest != nil {
		if findDistance(nearest.Point(), pt) < dedup.minDistance {
			return true
		}
	}
	for _, poi := range dedup.outside {
		if findDistance(poi.Geom, pt) < dedup.minDistance {
			return true
		}
	}
	return false
}

var nameTransliterator = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitizeName makes name safe for space separated output: diacritics are stripped,
// whitespace becomes '_' and any remaining non-ASCII or non-printable rune is dropped
func sanitizeName(name string) string {
	ascii, _, err := transform.String(nameTransliterator, name)
	if err != nil {
		ascii = name
	}
	var sb strings.Builder
	sb.Grow(len(ascii))
	for _, r := range ascii {
		switch {
		case unicode.IsSpace(r):
			sb.WriteRune('_')
		case r > unicode.MaxASCII, !unicode.IsPrint(r):
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// poiNameFromTags returns `name` or `brand` value
func poiNameFromTags(tags osm.Tags) string {
	if name := tags.Find("name"); name != "" {
		return name
	}
	return tags.Find("brand")
}

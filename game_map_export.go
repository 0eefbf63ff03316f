package osm2map

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type mapWriter struct {
	w         *bufio.Writer
	precision int
	buf       []byte
}

func (mw *mapWriter) writeFloat(f float64) {
	mw.buf = strconv.AppendFloat(mw.buf, f, 'f', mw.precision, 64)
}

func (mw *mapWriter) writeInt(i int) {
	mw.buf = strconv.AppendInt(mw.buf, int64(i), 10)
}

func (mw *mapWriter) writeSpace() {
	mw.buf = append(mw.buf, ' ')
}

func (mw *mapWriter) writeColor(color Color) {
	mw.writeSpace()
	mw.writeInt(int(color.R))
	mw.writeSpace()
	mw.writeInt(int(color.G))
	mw.writeSpace()
	mw.writeInt(int(color.B))
}

func (mw *mapWriter) writeRing(ring orb.Ring) {
	for _, pt := range ring {
		mw.writeSpace()
		mw.writeFloat(pt[0])
		mw.writeSpace()
		mw.writeFloat(pt[1])
	}
}

func (mw *mapWriter) line() error {
	mw.buf = append(mw.buf, '\n')
	_, err := mw.w.Write(mw.buf)
	mw.buf = mw.buf[:0]
	return err
}

func (mw *mapWriter) header(name string) error {
	mw.buf = append(mw.buf, name...)
	return mw.line()
}

// Encode writes map in the five section text format: NODES, EDGES, BUILDINGS, AREAS and L.
// Sections are separated by a blank line. Coordinates get given number of fractional digits
func (gm *GameMap) Encode(w io.Writer, precision int) error {
	mw := &mapWriter{
		w:         bufio.NewWriter(w),
		precision: precision,
		buf:       make([]byte, 0, 256),
	}

	if err := mw.header("NODES:"); err != nil {
		return errors.Wrap(err, "Can't write nodes")
	}
	for i, node := range gm.Nodes {
		mw.writeInt(i)
		mw.buf = append(mw.buf, ':')
		mw.writeSpace()
		mw.writeFloat(node.Geom[0])
		mw.writeSpace()
		mw.writeFloat(node.Geom[1])
		mw.writeSpace()
		mw.writeInt(int(node.ControlType))
		if err := mw.line(); err != nil {
			return errors.Wrap(err, "Can't write nodes")
		}
	}

	if err := mw.header("\nEDGES:"); err != nil {
		return errors.Wrap(err, "Can't write edges")
	}
	for _, edge := range gm.Edges {
		oneway := 0
		if edge.Oneway {
			oneway = 1
		}
		mw.writeInt(int(edge.Source))
		mw.writeSpace()
		mw.writeInt(int(edge.Target))
		mw.writeSpace()
		mw.writeFloat(edge.Width)
		mw.writeSpace()
		mw.writeInt(oneway)
		mw.writeSpace()
		mw.writeInt(edge.SpeedLimit)
		mw.writeSpace()
		mw.writeInt(edge.Lanes)
		if err := mw.line(); err != nil {
			return errors.Wrap(err, "Can't write edges")
		}
	}

	if err := mw.header("\nBUILDINGS:"); err != nil {
		return errors.Wrap(err, "Can't write buildings")
	}
	for _, building := range gm.Buildings {
		mw.writeFloat(building.Height)
		mw.writeColor(building.Color)
		mw.writeRing(building.Polygon)
		if err := mw.line(); err != nil {
			return errors.Wrap(err, "Can't write buildings")
		}
	}

	if err := mw.header("\nAREAS:"); err != nil {
		return errors.Wrap(err, "Can't write areas")
	}
	for _, area := range gm.Areas {
		mw.writeInt(int(area.Type))
		mw.writeColor(area.Color)
		mw.writeRing(area.Polygon)
		if err := mw.line(); err != nil {
			return errors.Wrap(err, "Can't write areas")
		}
	}

	if err := mw.header("\nL:"); err != nil {
		return errors.Wrap(err, "Can't write POIs")
	}
	for _, poi := range gm.POIs {
		mw.buf = append(mw.buf, 'L')
		mw.writeSpace()
		mw.writeInt(int(poi.Type))
		mw.writeSpace()
		mw.writeFloat(poi.Geom[0])
		mw.writeSpace()
		mw.writeFloat(poi.Geom[1])
		mw.writeSpace()
		mw.buf = append(mw.buf, poi.Name...)
		if err := mw.line(); err != nil {
			return errors.Wrap(err, "Can't write POIs")
		}
	}
	return errors.Wrap(mw.w.Flush(), "Can't flush")
}

// ExportToFile writes map to given file. Directory is created on demand
func (gm *GameMap) ExportToFile(fname string, precision int) error {
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return errors.Wrapf(err, "Can't create directory for '%s'", fname)
	}
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "Can't create file '%s'", fname)
	}
	err = gm.Encode(file, precision)
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "Can't export map to '%s'", fname)
	}
	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "Can't close file '%s'", fname)
	}
	return nil
}

package geotiff

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// TIFF tag IDs.
const (
	tagGeoKeyDirectoryTag = 34735
	tagGeoDoubleParamsTag = 34736
	tagGeoAsciiParamsTag  = 34737
)

// TIFF data types.
const (
	dtByte      = 1
	dtASCII     = 2
	dtShort     = 3
	dtLong      = 4
	dtRational  = 5
	dtSByte     = 6
	dtUndef     = 7
	dtSShort    = 8
	dtSLong     = 9
	dtSRational = 10
	dtFloat     = 11
	dtDouble    = 12
	dtLong8     = 16
	dtSLong8    = 17
	dtIFD8      = 18
)

// maxTagBytes bounds the size of a single out-of-line tag value. GeoTIFF
// tags are a few hundred bytes; anything larger is a corrupt count.
const maxTagBytes = 1 << 20

// ifd holds the geo tags of a TIFF Image File Directory.
type ifd struct {
	GeoKeys         []uint16
	GeoDoubleParams []float64
	GeoAsciiParams  string
}

// tiffEntry is a raw TIFF directory entry.
type tiffEntry struct {
	Tag      uint16
	DataType uint16
	Count    uint64
	Value    []byte // raw value bytes or inline value
}

// parseFirstIFD reads the header and the first IFD of a TIFF file. GeoKeys
// are only defined on the first IFD; overviews and masks are skipped.
func parseFirstIFD(r io.ReadSeeker) (ifd, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return ifd{}, errors.Wrap(err, "reading TIFF header")
	}

	var bo binary.ByteOrder
	switch string(header[0:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return ifd{}, errors.Newf("invalid TIFF byte order: %x", header[0:2])
	}

	magic := bo.Uint16(header[2:4])
	isBigTIFF := magic == 43
	if magic != 42 && magic != 43 {
		return ifd{}, errors.Newf("invalid TIFF magic: %d", magic)
	}

	var offset uint64
	if isBigTIFF {
		// BigTIFF: bytes 4-5 = offset size (8), bytes 6-7 = always 0, bytes 8-15 = first IFD offset
		var bigHeader [8]byte
		if _, err := io.ReadFull(r, bigHeader[:]); err != nil {
			return ifd{}, errors.Wrap(err, "reading BigTIFF header")
		}
		offset = bo.Uint64(bigHeader[:])
	} else {
		offset = uint64(bo.Uint32(header[4:8]))
	}
	if offset == 0 {
		return ifd{}, errors.New("TIFF has no image file directory")
	}

	d, err := parseOneIFD(r, bo, offset, isBigTIFF)
	if err != nil {
		return ifd{}, errors.Wrapf(err, "parsing IFD at offset %d", offset)
	}
	return d, nil
}

func parseOneIFD(r io.ReadSeeker, bo binary.ByteOrder, offset uint64, bigTIFF bool) (ifd, error) {
	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
		return ifd{}, err
	}

	var numEntries uint64
	if bigTIFF {
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return ifd{}, err
		}
		numEntries = bo.Uint64(buf[:])
	} else {
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return ifd{}, err
		}
		numEntries = uint64(bo.Uint16(buf[:]))
	}
	if numEntries > math.MaxUint16 {
		return ifd{}, errors.Newf("implausible IFD entry count %d", numEntries)
	}

	entrySize := 12
	if bigTIFF {
		entrySize = 20
	}

	// Only the geo tags are kept; the rest of the directory is skipped.
	var entries []tiffEntry
	buf := make([]byte, entrySize)
	for i := uint64(0); i < numEntries; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return ifd{}, err
		}
		e := parseTiffEntry(buf, bo, bigTIFF)
		switch e.Tag {
		case tagGeoKeyDirectoryTag, tagGeoDoubleParamsTag, tagGeoAsciiParamsTag:
			entries = append(entries, e)
		}
	}

	for i := range entries {
		if err := resolveEntry(r, bo, &entries[i], bigTIFF); err != nil {
			return ifd{}, errors.Wrapf(err, "resolving entry tag %d", entries[i].Tag)
		}
	}

	return buildIFD(entries, bo), nil
}

func parseTiffEntry(buf []byte, bo binary.ByteOrder, bigTIFF bool) tiffEntry {
	tag := bo.Uint16(buf[0:2])
	dt := bo.Uint16(buf[2:4])

	var count uint64
	var valueBytes []byte

	if bigTIFF {
		count = bo.Uint64(buf[4:12])
		valueBytes = make([]byte, 8)
		copy(valueBytes, buf[12:20])
	} else {
		count = uint64(bo.Uint32(buf[4:8]))
		valueBytes = make([]byte, 4)
		copy(valueBytes, buf[8:12])
	}

	return tiffEntry{
		Tag:      tag,
		DataType: dt,
		Count:    count,
		Value:    valueBytes,
	}
}

func dataTypeSize(dt uint16) int {
	switch dt {
	case dtByte, dtASCII, dtSByte, dtUndef:
		return 1
	case dtShort, dtSShort:
		return 2
	case dtLong, dtSLong, dtFloat:
		return 4
	case dtRational, dtSRational, dtDouble, dtLong8, dtSLong8, dtIFD8:
		return 8
	default:
		return 1
	}
}

// resolveEntry reads the actual data for an entry if it doesn't fit inline.
func resolveEntry(r io.ReadSeeker, bo binary.ByteOrder, e *tiffEntry, bigTIFF bool) error {
	if e.Count > maxTagBytes {
		return errors.Newf("tag value of %d items is too large", e.Count)
	}
	totalSize := int(e.Count) * dataTypeSize(e.DataType)

	inlineSize := 4
	if bigTIFF {
		inlineSize = 8
	}

	if totalSize <= inlineSize {
		return nil
	}

	var dataOffset uint64
	if bigTIFF {
		dataOffset = bo.Uint64(e.Value)
	} else {
		dataOffset = uint64(bo.Uint32(e.Value))
	}

	if _, err := r.Seek(int64(dataOffset), io.SeekStart); err != nil {
		return err
	}

	data := make([]byte, totalSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return err
	}
	e.Value = data
	return nil
}

func buildIFD(entries []tiffEntry, bo binary.ByteOrder) ifd {
	var d ifd
	for _, e := range entries {
		switch e.Tag {
		case tagGeoKeyDirectoryTag:
			d.GeoKeys = getUint16Slice(e, bo)
		case tagGeoDoubleParamsTag:
			d.GeoDoubleParams = getFloat64Slice(e, bo)
		case tagGeoAsciiParamsTag:
			n := min(int(e.Count), len(e.Value))
			d.GeoAsciiParams = string(e.Value[:n])
		}
	}
	return d
}

func getUint16Slice(e tiffEntry, bo binary.ByteOrder) []uint16 {
	n := min(int(e.Count), len(e.Value)/2)
	result := make([]uint16, n)
	for i := 0; i < n; i++ {
		result[i] = bo.Uint16(e.Value[i*2 : i*2+2])
	}
	return result
}

func getFloat64Slice(e tiffEntry, bo binary.ByteOrder) []float64 {
	size := dataTypeSize(e.DataType)
	n := min(int(e.Count), len(e.Value)/size)
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		off := i * size
		switch e.DataType {
		case dtDouble:
			result[i] = math.Float64frombits(bo.Uint64(e.Value[off : off+8]))
		case dtFloat:
			result[i] = float64(math.Float32frombits(bo.Uint32(e.Value[off : off+4])))
		}
	}
	return result
}

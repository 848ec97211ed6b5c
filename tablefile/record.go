package tablefile

import "encoding/binary"

// RecordSize is the on-disk size of one (start_index, end_index) record:
// two little-endian uint64s (spec §3, §6).
const RecordSize = 16

// EncodeRecord serializes a chain's start/end index pair into RecordSize
// bytes, little-endian (spec §6's on-disk record format).
func EncodeRecord(start, end uint64) [RecordSize]byte {
	var buf [RecordSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], start)
	binary.LittleEndian.PutUint64(buf[8:16], end)
	return buf
}

// DecodeRecord is the inverse of EncodeRecord.
func DecodeRecord(buf []byte) (start, end uint64) {
	_ = buf[RecordSize-1] // bounds check hint to compiler, teacher's indexes.uints.go convention
	start = binary.LittleEndian.Uint64(buf[0:8])
	end = binary.LittleEndian.Uint64(buf[8:16])
	return
}

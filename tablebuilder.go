package inflate

import "math/bits"

// compressedBlock holds the accelerated lookup tables rebuilt for each
// DEFLATE block, per spec.md §3 and §4.6.
//
// advanceTable is indexed by the next 12 buffered bits. An entry with
// non-zero low 4 bits is a literal entry: the low 4 bits are the input bits
// to consume and bits 4..15 the number of output bytes, the first one or
// two of which are in dataTable. An entry with zero low 4 bits and the top
// bit clear is the literal/length symbol 256 plus bits 8..14, with a code
// length in bits 4..7. An entry with the top bit set holds, in bits 4..14,
// the start of an 8-slot window of secondaryTable selected by the next 3
// bits; each secondaryTable entry holds a symbol in bits 4..15 and its full
// code length in bits 0..3.
type compressedBlock struct {
	dataTable    [4096][2]byte
	advanceTable [4096]uint16

	distTable         [256]uint8
	distSymbolLengths [30]uint8
	distSymbolMasks   [30]uint16
	distSymbolCodes   [30]uint16

	secondaryTable []uint16
}

// buildTables builds the literal/length and distance decode tables for the
// block currently described by d.header, per spec.md §4.6.
func (d *Decoder) buildTables() DecompressionError {
	litLenLengths := d.header.codeLengths[:288]
	codes, ok := buildCodes(litLenLengths)
	if !ok {
		return ErrBadLiteralLengthHuffmanTree
	}

	// If literal 0 has the shortest code and that code is all-zero bits,
	// a single 12-bit lookup can emit more than the usual one or two
	// literals: above the matched code, every further run of zero bits as
	// long as literal 0's code represents one more implied zero byte. Those
	// bytes are not written; they read as zero in the caller's pre-zeroed
	// output tail (spec.md §9), and a single literal's unused second
	// data_table byte is kept zero since the fast path writes it anyway.
	useExtraLength := litLenLengths[0] > 0 && codes[0] == 0

	for i := 0; i < 256; i++ {
		code := codes[i]
		length := litLenLengths[i]
		if length == 0 || length > 12 {
			continue
		}

		for j := uint32(code); j < 4096; j += 1 << length {
			extra := extraLength(useExtraLength, uint32(j), length, litLenLengths[0])
			d.compression.dataTable[j][0] = byte(i)
			d.compression.dataTable[j][1] = 0
			d.compression.advanceTable[j] = (uint16(extra)+1)<<4 | (uint16(length) + uint16(extra)*uint16(litLenLengths[0]))
		}

		if length == 0 || length > 9 {
			continue
		}
		for ii := 0; ii < 256; ii++ {
			code2 := codes[ii]
			length2 := litLenLengths[ii]
			if length2 == 0 || length+length2 > 12 {
				continue
			}
			for j := uint32(code) | uint32(code2)<<length; j < 4096; j += 1 << (length + length2) {
				extra := extraLength(useExtraLength, j, length+length2, litLenLengths[0])
				d.compression.dataTable[j][0] = byte(i)
				d.compression.dataTable[j][1] = byte(ii)
				d.compression.advanceTable[j] = (uint16(extra)+2)<<4 | (uint16(length+length2) + uint16(extra)*uint16(litLenLengths[0]))
			}
		}
	}

	for i := 256; i < d.header.hlit; i++ {
		length := litLenLengths[i]
		if length == 0 || length > 12 {
			continue
		}
		for j := uint32(codes[i]); j < 4096; j += 1 << length {
			d.compression.advanceTable[j] = uint16(i-256)<<8 | uint16(length)<<4
		}
	}

	for i := 0; i < d.header.hlit; i++ {
		if litLenLengths[i] > 12 {
			d.compression.advanceTable[codes[i]&0xfff] = 0xFFFF
		}
	}

	secondaryLen := 0
	for i := 0; i < d.header.hlit; i++ {
		if litLenLengths[i] <= 12 {
			continue
		}
		j := codes[i] & 0xfff
		if d.compression.advanceTable[j] == 0xFFFF {
			d.compression.advanceTable[j] = uint16(secondaryLen)<<4 | 0x8000
			secondaryLen += 8
		}
	}
	if secondaryLen > 0x7ff {
		return ErrBadLiteralLengthHuffmanTree
	}
	d.compression.secondaryTable = make([]uint16, secondaryLen)
	for i := 0; i < d.header.hlit; i++ {
		length := litLenLengths[i]
		if length <= 12 {
			continue
		}
		j := codes[i] & 0xfff
		k := (d.compression.advanceTable[j] & 0x7ff0) >> 4
		for s := uint32(codes[i]) >> 12; s < 8; s += 1 << (length - 12) {
			d.compression.secondaryTable[uint32(k)+s] = uint16(i)<<4 | uint16(length)
		}
	}

	return d.buildDistanceTable()
}

// extraLength computes the number of extra implied zero-byte outputs a
// 12-bit prefix j encodes, for a code of the given length, when literal 0
// has the all-zero code (see buildTables' useExtraLength comment).
func extraLength(useExtraLength bool, j uint32, length, zeroLength uint8) uint8 {
	if !useExtraLength {
		return 0
	}
	masked := (j | 0xf000) >> length
	return uint8(bits.TrailingZeros16(uint16(masked))) / zeroLength
}

// buildDistanceTable builds the distance-symbol decode tables, per
// spec.md §4.6. RFC 1951 permits one degenerate case buildCodes otherwise
// rejects: a distance alphabet with exactly one non-zero length. That
// single symbol gets code 0 with the mask of its length, so a peeked
// distance code whose low bits are all zero resolves to it. An all-zero
// distance alphabet leaves every symbol unmatchable, so a back-reference in
// such a block fails with ErrInvalidDistanceCode.
func (d *Decoder) buildDistanceTable() DecompressionError {
	lengths := d.header.codeLengths[288:320]

	allZero := true
	nonZero := 0
	for _, l := range lengths {
		if l != 0 {
			allZero = false
			nonZero++
		}
	}

	if allZero {
		d.compression.distSymbolMasks = [30]uint16{}
		for i := range d.compression.distSymbolCodes {
			d.compression.distSymbolCodes[i] = 0xFFFF
		}
		d.compression.distTable = [256]uint8{}
		return 0
	}

	codes, ok := buildCodes(lengths)
	if !ok {
		if nonZero != 1 {
			return ErrBadDistanceHuffmanTree
		}
		codes = make([]uint16, 32)
		d.compression.distTable = [256]uint8{}
	}

	copy(d.compression.distSymbolCodes[:], codes[:30])
	copy(d.compression.distSymbolLengths[:], lengths[:30])
	for i := 0; i < 30; i++ {
		if lengths[i] == 0 {
			d.compression.distSymbolMasks[i] = 0
			d.compression.distSymbolCodes[i] = 0xFFFF
		} else {
			d.compression.distSymbolMasks[i] = 1<<lengths[i] - 1
		}
	}
	d.compression.distTable = [256]uint8{}

	return 0
}

package inflate

// blockHeader holds the in-progress state for a dynamic block's header:
// HLIT/HDIST, the 19-symbol code-length code's lookup table, and the
// 320-slot code-length working array being filled in by codelengths.go.
type blockHeader struct {
	hlit, hdist    int
	numLengthsRead int

	// table is a 7-bit-indexed lookup built from the code-length code
	// (itself at most 7 bits long, per RFC 1951). Each entry packs the
	// code-length-code symbol (0..18) into the high 5 bits and that
	// symbol's own code length into the low 3 bits. 0xFF marks a slot no
	// valid code reaches.
	table [128]uint8

	// codeLengths is laid out as 288 literal/length lengths followed by
	// 32 distance lengths. While being filled in by codelengths.go it
	// instead holds hlit+hdist consecutive lengths starting at index 0;
	// finishCodeLengths moves the distance slice into place.
	codeLengths [320]uint8
}

// readBlockHeader parses the 3-bit BFINAL+BTYPE prefix and, depending on
// BTYPE, either transitions straight to UncompressedData/CompressedData or
// (for a dynamic block) reads the code-length code and transitions to
// CodeLengths. It returns without error and without changing state if not
// enough bits are currently available; the caller retries on the next Read.
func (d *Decoder) readBlockHeader(input *[]byte) DecompressionError {
	d.fillBuffer(input)
	if d.nbits < 3 {
		return 0
	}

	start := d.peekBits(3)
	d.lastBlock = start&1 != 0
	switch start >> 1 {
	case 0b00:
		alignBits := uint8((8 - (d.bitsRead+3)%8) % 8)
		headerBits := 3 + 32 + alignBits
		if d.nbits < headerBits {
			return 0
		}

		length := uint16(d.peekBits(alignBits+19) >> (alignBits + 3))
		nlen := uint16(d.peekBits(headerBits) >> (alignBits + 19))
		if nlen != ^length {
			return ErrInvalidUncompressedBlockLength
		}

		d.state = stateUncompressedData
		d.uncompressedBytesLeft = length
		d.consumeBits(headerBits)
		return 0

	case 0b01:
		d.consumeBits(3)
		d.header.hlit = 288
		d.header.hdist = 32
		copy(d.header.codeLengths[:], fixedCodeLengths[:])
		if err := d.buildTables(); err != 0 {
			return err
		}
		d.state = stateCompressedData
		return 0

	case 0b10:
		if d.nbits < 17 {
			return 0
		}
		hclen := int(d.peekBits(17)>>13) + 4
		if int(d.nbits)+len(*input)*8 < 17+3*hclen {
			return 0
		}

		d.header.hlit = int(d.peekBits(8)>>3) + 257
		d.header.hdist = int(d.peekBits(13)>>8) + 1
		if d.header.hlit > 286 {
			return ErrInvalidHlit
		}
		if d.header.hdist > 30 {
			return ErrInvalidHdist
		}

		d.consumeBits(17)
		var codeLengthLengths [19]uint8
		for i := 0; i < hclen; i++ {
			v, ok := d.readBits(3, input)
			if !ok {
				// Guaranteed available by the length check above.
				panic("inflate: internal error: short read of code-length code")
			}
			codeLengthLengths[clclOrder[i]] = uint8(v)
		}
		codeLengthCodes, ok := buildCodes(codeLengthLengths[:])
		if !ok {
			return ErrBadCodeLengthHuffmanTree
		}

		for i := range d.header.table {
			d.header.table[i] = 0xFF
		}
		for sym := 0; sym < 19; sym++ {
			length := codeLengthLengths[sym]
			if length == 0 {
				continue
			}
			j := codeLengthCodes[sym]
			for j < 128 {
				d.header.table[j] = uint8(sym)<<3 | length
				j += 1 << length
			}
		}

		d.header.numLengthsRead = 0
		d.state = stateCodeLengths
		return 0

	default: // 0b11
		return ErrInvalidBlockType
	}
}

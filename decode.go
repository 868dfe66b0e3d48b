package inflate

// readCompressed runs the accelerated decode loop for a compressed block
// (BTYPE 01 or 10), per spec.md §4.7. It returns once the block's tables
// can't resolve another symbol from the bits currently buffered, once the
// block ends (transitioning to BlockHeader or Checksum), or once output is
// full.
//
// Every literal/length code of at most 12 bits is resolved by one lookup
// into advanceTable at the next 12 buffered bits, as built by buildTables;
// longer codes take a second lookup into secondaryTable, and distance codes
// are matched by scanning the distSymbol tables. See compressedBlock's doc
// comment for the entry encoding.
func (d *Decoder) readCompressed(input *[]byte, output []byte, outputIndex int) (int, DecompressionError) {
	for d.state == stateCompressedData {
		d.fillBuffer(input)
		if d.nbits < 15 {
			return outputIndex, 0
		}

		tableIndex := d.peekBits(12)
		data := d.compression.dataTable[tableIndex]
		advance := d.compression.advanceTable[tableIndex]

		advanceInputBits := uint8(advance & 0x0f)
		advanceOutputBytes := int(advance >> 4)

		// Fast path: the next one or two symbols are literals no longer
		// than 12 bits combined, so the table already holds the bytes to
		// emit and how far to advance.
		if advanceInputBits > 0 {
			if outputIndex+1 < len(output) {
				output[outputIndex] = data[0]
				output[outputIndex+1] = data[1]
				outputIndex += advanceOutputBytes
				d.consumeBits(advanceInputBits)

				if outputIndex > len(output) {
					d.queuedRLE = &queuedRLE{data: 0, n: outputIndex - len(output)}
					return len(output), 0
				}
				continue
			} else if outputIndex+advanceOutputBytes == len(output) {
				output[outputIndex] = data[0]
				outputIndex++
				d.consumeBits(advanceInputBits)
				return outputIndex, 0
			}
			return outputIndex, 0
		}

		// Slow path: a length symbol, and/or a code longer than 12 bits.
		var litlenCodeBits uint8
		var litlenSymbol int
		if advance&0x8000 == 0 {
			litlenCodeBits = uint8(advanceOutputBytes & 0x0f)
			litlenSymbol = 256 + advanceOutputBytes>>4
		} else if advance != 0xfff0 {
			next3 := d.peekBits(15) >> 12
			secondaryIndex := (advance & 0x7ff0) >> 4
			secondary := d.compression.secondaryTable[uint32(secondaryIndex)+uint32(next3)]
			litlenCodeBits = uint8(secondary & 0xf)
			litlenSymbol = int(secondary >> 4)
		} else {
			return outputIndex, ErrInvalidLiteralLengthCode
		}

		switch {
		case litlenSymbol < 256:
			if outputIndex >= len(output) {
				return outputIndex, 0
			}
			output[outputIndex] = byte(litlenSymbol)
			outputIndex++
			d.consumeBits(litlenCodeBits)
			continue

		case litlenSymbol == 256:
			d.consumeBits(litlenCodeBits)
			if d.lastBlock {
				d.state = stateChecksum
			} else {
				d.state = stateBlockHeader
			}
			return outputIndex, 0

		case litlenSymbol > 285:
			return outputIndex, ErrInvalidLiteralLengthCode
		}

		lengthExtraBits := lenSymToLenExtra[litlenSymbol-257]
		if d.nbits < lengthExtraBits+litlenCodeBits+28 {
			return outputIndex, 0
		}

		bits := d.peekBits(lengthExtraBits+litlenCodeBits+28) >> litlenCodeBits
		lengthCode := bits & (1<<lengthExtraBits - 1)
		distCode := uint16(bits>>lengthExtraBits) & 0x7fff
		length := int(lenSymToLenBase[litlenSymbol-257]) + int(lengthCode)

		distSymbol := -1
		for j := int(d.compression.distTable[distCode&0xFF]); j < 30; j++ {
			if distCode&d.compression.distSymbolMasks[j] == d.compression.distSymbolCodes[j] {
				distSymbol = j
				break
			}
		}
		if distSymbol < 0 {
			return outputIndex, ErrInvalidDistanceCode
		}

		distCodeBits := d.compression.distSymbolLengths[distSymbol]
		distExtraBits := distSymToDistExtra[distSymbol]
		distExtraMask := uint64(1<<distExtraBits - 1)
		dist := int(distSymToDistBase[distSymbol]) + int((bits>>(lengthExtraBits+distCodeBits))&distExtraMask)

		if dist > outputIndex {
			return outputIndex, ErrDistanceTooFarBack
		}

		copyLength := length
		if room := len(output) - outputIndex; copyLength > room {
			copyLength = room
		}
		if dist < copyLength {
			for i := 0; i < copyLength; i++ {
				output[outputIndex+i] = output[outputIndex+i-dist]
			}
		} else {
			copy(output[outputIndex:outputIndex+copyLength], output[outputIndex-dist:])
		}
		outputIndex += copyLength

		d.consumeBits(litlenCodeBits + lengthExtraBits + distCodeBits + distExtraBits)

		if copyLength < length {
			d.queuedBackref = &queuedBackref{dist: dist, n: length - copyLength}
			return outputIndex, 0
		}
	}
	return outputIndex, 0
}

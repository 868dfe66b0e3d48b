package inflate

import "hash/adler32"

// state is the decoder's position in the zlib/DEFLATE stream.
type state uint8

const (
	stateZlibHeader state = iota
	stateBlockHeader
	stateCodeLengths
	stateCompressedData
	stateUncompressedData
	stateChecksum
	stateDone
)

// queuedRLE carries a run that overflowed the caller's output buffer across
// calls to Read: data is the byte being repeated, n is how many are left.
type queuedRLE struct {
	data byte
	n    int
}

// queuedBackref carries a back-reference copy that overflowed the caller's
// output buffer across calls to Read: dist is the copy distance, n is how
// many bytes are left to copy.
type queuedBackref struct {
	dist int
	n    int
}

// Decoder is a resumable zlib/DEFLATE decompressor. Create one with
// NewDecoder: the zero value has no checksum state and is not ready to use.
// A Decoder must not be copied after first use and, once any method returns
// a non-zero DecompressionError, must not be used again.
type Decoder struct {
	compression compressedBlock
	header      blockHeader

	uncompressedBytesLeft uint16

	buffer   uint64
	nbits    uint8
	bitsRead uint64

	queuedRLE     *queuedRLE
	queuedBackref *queuedBackref
	lastBlock     bool

	state    state
	checksum hash32
}

// hash32 is the subset of hash.Hash32 this package needs for the running
// Adler-32 checksum.
type hash32 interface {
	Write(p []byte) (int, error)
	Sum32() uint32
}

// NewDecoder returns a Decoder ready to decompress a single zlib stream.
func NewDecoder() *Decoder {
	d := &Decoder{checksum: adler32.New()}
	for i := range d.compression.advanceTable {
		d.compression.advanceTable[i] = 0xFFFF
	}
	for i := range d.compression.distSymbolCodes {
		d.compression.distSymbolCodes[i] = 0xFFFF
	}
	return d
}

// Done reports whether the Decoder has finished decompressing its stream,
// including verifying the trailing Adler-32 checksum.
func (d *Decoder) Done() bool {
	return d.state == stateDone
}

// Read decompresses as much of input as it can into output[outputPosition:],
// returning the number of bytes consumed from input and the number of bytes
// written to output. output must have room for at least two bytes past
// outputPosition, because the literal fast path in decode.go may
// speculatively write one byte past what it reports as written. Every byte
// from outputPosition onward must be zero, because runs of zero bytes are
// produced by advancing past them without writing them.
//
// endOfInput tells the Decoder that input holds everything left in the
// stream; if the stream is not yet Done once input (and any internally
// buffered bits) are exhausted, Read returns ErrInsufficientInput.
func (d *Decoder) Read(input, output []byte, outputPosition int, endOfInput bool) (int, int, DecompressionError) {
	if d.state == stateDone {
		return 0, 0, 0
	}
	if len(output) < outputPosition+2 {
		panic("inflate: output must have room for at least two bytes past outputPosition")
	}

	remaining := input
	outputIndex := outputPosition

	if d.queuedRLE != nil {
		q := d.queuedRLE
		n := q.n
		if room := len(output) - outputIndex; n > room {
			n = room
		}
		if q.data != 0 {
			for i := 0; i < n; i++ {
				output[outputIndex+i] = q.data
			}
		}
		outputIndex += n
		if n < q.n {
			d.queuedRLE = &queuedRLE{data: q.data, n: q.n - n}
			d.checksum.Write(output[outputPosition:outputIndex])
			return 0, n, 0
		}
		d.queuedRLE = nil
	}
	if d.queuedBackref != nil {
		q := d.queuedBackref
		n := q.n
		if room := len(output) - outputIndex; n > room {
			n = room
		}
		for i := 0; i < n; i++ {
			output[outputIndex+i] = output[outputIndex+i-q.dist]
		}
		outputIndex += n
		if n < q.n {
			d.queuedBackref = &queuedBackref{dist: q.dist, n: q.n - n}
			d.checksum.Write(output[outputPosition:outputIndex])
			return 0, n, 0
		}
		d.queuedBackref = nil
	}

	var lastState state
	first := true
	for d.state != stateDone && (first || lastState != d.state) {
		first = false
		lastState = d.state

		switch d.state {
		case stateZlibHeader:
			d.fillBuffer(&remaining)
			if d.nbits < 16 {
				break
			}
			header := d.peekBits(16)
			if err := d.readZlibHeader([]byte{byte(header), byte(header >> 8)}); err != 0 {
				return 0, 0, err
			}
			d.consumeBits(16)
			d.state = stateBlockHeader

		case stateBlockHeader:
			if err := d.readBlockHeader(&remaining); err != 0 {
				return 0, 0, err
			}

		case stateCodeLengths:
			if err := d.readCodeLengths(&remaining); err != 0 {
				return 0, 0, err
			}

		case stateCompressedData:
			idx, err := d.readCompressed(&remaining, output, outputIndex)
			outputIndex = idx
			if err != 0 {
				return 0, 0, err
			}

		case stateUncompressedData:
			outputIndex = d.readUncompressed(&remaining, output, outputIndex)

		case stateChecksum:
			d.fillBuffer(&remaining)
			alignBits := (8 - uint8(d.bitsRead%8)) % 8
			if d.nbits >= 32+alignBits {
				d.checksum.Write(output[outputPosition:outputIndex])
				if alignBits != 0 {
					d.consumeBits(alignBits)
				}
				want := uint32(d.peekBits(32))
				want = want<<24 | (want<<8)&0xff0000 | (want>>8)&0xff00 | want>>24
				if want != d.checksum.Sum32() {
					return 0, 0, ErrWrongChecksum
				}
				d.consumeBits(32)
				d.state = stateDone
			}

		case stateDone:
			panic("inflate: internal error: reached stateDone in drive loop")
		}
	}

	if d.state != stateDone {
		d.checksum.Write(output[outputPosition:outputIndex])
	}

	if d.state == stateDone || !endOfInput || outputIndex >= len(output)-1 {
		return len(input) - len(remaining), outputIndex - outputPosition, 0
	}
	return 0, 0, ErrInsufficientInput
}

// readZlibHeader validates the 2-byte zlib header (RFC 1950 §2.2): CM must
// be 8 (deflate), CINFO must leave a window size of at most 32K, FDICT must
// be unset (a preset dictionary isn't supported), and the 16-bit header
// read big-endian must be a multiple of 31.
func (d *Decoder) readZlibHeader(input []byte) DecompressionError {
	cmf, flg := input[0], input[1]
	if cmf&0x0f != 0x08 || cmf&0xf0 > 0x70 || flg&0x20 != 0 || (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return ErrBadZlibHeader
	}
	return 0
}

// readUncompressed drains a stored block (BTYPE 00), per spec.md §4.8: any
// bytes still sitting in the bit buffer from the block header's byte
// alignment are drained first, then the rest is copied straight out of
// input without touching the bit buffer at all.
func (d *Decoder) readUncompressed(input *[]byte, output []byte, outputIndex int) int {
	for d.nbits > 0 && d.uncompressedBytesLeft > 0 && outputIndex < len(output) {
		output[outputIndex] = byte(d.peekBits(8))
		d.consumeBits(8)
		outputIndex++
		d.uncompressedBytesLeft--
	}
	// The loop above may exit with bits still pending, either because the
	// caller ran out of output room or because the buffer held bytes past
	// this block's end (the start of whatever follows). Either way those
	// bits are still live data and must survive to the next call; only a
	// fully drained buffer is safe to clear.
	if d.nbits == 0 {
		d.buffer = 0
	}

	in := *input
	n := int(d.uncompressedBytesLeft)
	if len(in) < n {
		n = len(in)
	}
	if room := len(output) - outputIndex; room < n {
		n = room
	}
	copy(output[outputIndex:], in[:n])
	*input = in[n:]
	outputIndex += n
	d.uncompressedBytesLeft -= uint16(n)

	if d.uncompressedBytesLeft == 0 {
		if d.lastBlock {
			d.state = stateChecksum
		} else {
			d.state = stateBlockHeader
		}
	}
	return outputIndex
}

// DecompressToVec decompresses a complete zlib stream in one call, growing
// its output buffer as needed.
func DecompressToVec(input []byte) ([]byte, DecompressionError) {
	d := NewDecoder()
	output := make([]byte, 1024)
	inputIndex, outputIndex := 0, 0
	for !d.Done() {
		consumed, produced, err := d.Read(input[inputIndex:], output, outputIndex, true)
		if err != 0 {
			return nil, err
		}
		inputIndex += consumed
		outputIndex += produced
		output = append(output, make([]byte, 32*1024)...)
	}
	return output[:outputIndex], 0
}

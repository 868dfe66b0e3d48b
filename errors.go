package inflate

// DecompressionError reports why a Decoder rejected a stream. Every value is
// terminal: once a Decoder returns one, the Decoder is poisoned and must not
// be reused.
type DecompressionError int

const (
	// ErrBadZlibHeader means the zlib 2-byte header is invalid: CM != 8,
	// CINFO > 7, FDICT set, or the CMF/FLG check bits don't divide by 31.
	ErrBadZlibHeader DecompressionError = iota + 1
	// ErrInsufficientInput means end-of-input was asserted but the stream
	// had not reached the Done state.
	ErrInsufficientInput
	// ErrInvalidBlockType means a block header specified the reserved
	// BTYPE value 0b11.
	ErrInvalidBlockType
	// ErrInvalidUncompressedBlockLength means a stored block's NLEN was
	// not the one's complement of LEN.
	ErrInvalidUncompressedBlockLength
	// ErrInvalidHlit means a dynamic block's HLIT exceeded 286.
	ErrInvalidHlit
	// ErrInvalidHdist means a dynamic block's HDIST exceeded 30.
	ErrInvalidHdist
	// ErrInvalidCodeLengthRepeat means a repeat symbol (16/17/18) was used
	// with no prior code length to repeat, or its count overran HLIT+HDIST.
	ErrInvalidCodeLengthRepeat
	// ErrBadCodeLengthHuffmanTree means the code-length alphabet's lengths
	// do not form a valid canonical Huffman code.
	ErrBadCodeLengthHuffmanTree
	// ErrBadLiteralLengthHuffmanTree means the literal/length alphabet's
	// lengths do not form a valid canonical Huffman code.
	ErrBadLiteralLengthHuffmanTree
	// ErrBadDistanceHuffmanTree means the distance alphabet's lengths do
	// not form a valid canonical Huffman code (and are not the single
	// permitted degenerate single-symbol case).
	ErrBadDistanceHuffmanTree
	// ErrInvalidLiteralLengthCode means a decoded literal/length code was
	// the invalid-code sentinel, or resolved to a symbol greater than 285.
	ErrInvalidLiteralLengthCode
	// ErrInvalidDistanceCode means no distance symbol's code matched the
	// peeked bits.
	ErrInvalidDistanceCode
	// ErrInputStartsWithRun means a distance-1 run was requested before any
	// output had been produced.
	ErrInputStartsWithRun
	// ErrDistanceTooFarBack means a back-reference's distance exceeded the
	// number of bytes produced so far.
	ErrDistanceTooFarBack
	// ErrWrongChecksum means the trailing Adler-32 did not match the
	// checksum computed over the decompressed bytes.
	ErrWrongChecksum
	// ErrExtraInput means bytes remained in the input after the stream
	// reached Done. No code path in this package currently returns it; see
	// DESIGN.md.
	ErrExtraInput
)

func (e DecompressionError) Error() string {
	switch e {
	case ErrBadZlibHeader:
		return "inflate: bad zlib header"
	case ErrInsufficientInput:
		return "inflate: insufficient input"
	case ErrInvalidBlockType:
		return "inflate: invalid block type"
	case ErrInvalidUncompressedBlockLength:
		return "inflate: invalid uncompressed block length"
	case ErrInvalidHlit:
		return "inflate: invalid hlit"
	case ErrInvalidHdist:
		return "inflate: invalid hdist"
	case ErrInvalidCodeLengthRepeat:
		return "inflate: invalid code length repeat"
	case ErrBadCodeLengthHuffmanTree:
		return "inflate: bad code length huffman tree"
	case ErrBadLiteralLengthHuffmanTree:
		return "inflate: bad literal/length huffman tree"
	case ErrBadDistanceHuffmanTree:
		return "inflate: bad distance huffman tree"
	case ErrInvalidLiteralLengthCode:
		return "inflate: invalid literal/length code"
	case ErrInvalidDistanceCode:
		return "inflate: invalid distance code"
	case ErrInputStartsWithRun:
		return "inflate: run before any output was produced"
	case ErrDistanceTooFarBack:
		return "inflate: distance too far back"
	case ErrWrongChecksum:
		return "inflate: wrong checksum"
	case ErrExtraInput:
		return "inflate: extra input after end of stream"
	default:
		return "inflate: unknown error"
	}
}

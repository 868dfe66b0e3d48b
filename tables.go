package inflate

// Constant tables from RFC 1951's Annex. These are treated as known
// constants (spec.md §1 Non-goals) rather than derived values.

// clclOrder is the order in which the 19 code-length-code lengths are
// stored in a dynamic block header (RFC 1951 §3.2.7).
var clclOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedCodeLengths is the fixed Huffman code-length vector used by BTYPE=01
// blocks (RFC 1951 §3.2.6): 288 literal/length lengths followed by 32
// distance lengths.
var fixedCodeLengths = buildFixedCodeLengths()

func buildFixedCodeLengths() [320]uint8 {
	var lengths [320]uint8
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	for i := 288; i < 320; i++ {
		lengths[i] = 5
	}
	return lengths
}

// lenSymToLenBase and lenSymToLenExtra give, for length symbols 257..285
// (indexed 0..28), the base length and number of extra bits (RFC 1951
// §3.2.5).
var lenSymToLenBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lenSymToLenExtra = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distSymToDistBase and distSymToDistExtra give, for distance symbols
// 0..29, the base distance and number of extra bits (RFC 1951 §3.2.5).
var distSymToDistBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distSymToDistExtra = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// lengthToLenExtra and lengthToSymbol are the reverse mapping from a raw
// match length (3..258) back to the extra-bit count and symbol that
// encodes it. They exist only to cross-check lenSymToLen{Base,Extra}
// against each other (see tables_test.go); nothing on the decode hot path
// uses them.
var (
	lengthToLenExtra [256]uint8
	lengthToSymbol   [256]uint16
)

func init() {
	for sym, base := range lenSymToLenBase {
		extra := lenSymToLenExtra[sym]
		for j := 0; j < 1<<extra; j++ {
			idx := int(base) + j - 3 // index is (actual length - 3)
			lengthToLenExtra[idx] = extra
			lengthToSymbol[idx] = uint16(257 + sym)
		}
	}
}

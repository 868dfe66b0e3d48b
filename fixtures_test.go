package inflate_test

// simpleFixture is the hand-crafted, multi-block zlib stream from the
// original source's "simple" test (spec.md §8 concrete scenario 4): several
// stored, fixed, and dynamic-Huffman blocks concatenated, including long
// runs that exercise the use_extra_length table-builder optimization.
var simpleFixture = []byte{
	120, 1, 154, 41, 120, 1, 0, 255, 0, 0, 255, 1,
	0, 0, 41, 41, 169, 93, 41, 255, 0, 0, 0, 13,
	120, 1, 237, 224, 1, 144, 36, 73, 146, 36, 73, 18,
	139, 0, 0, 0, 16, 0, 0, 0, 0, 0, 0, 0,
	0, 204, 204, 0, 0, 0, 0, 0, 0, 8, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 249, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 170, 153, 187, 71, 68, 68, 102, 102,
	102, 86, 117, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 78, 85, 85, 119, 119, 119, 119, 119, 247,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	255, 255, 255, 255, 255, 255, 0, 108, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 203, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 120, 1, 5, 224, 1, 144, 36, 73, 146, 36, 73,
	18, 139, 170, 153, 187, 71, 68, 68, 154, 41, 120, 1,
	0, 255, 0, 0, 255, 1, 0, 0, 40, 41, 41, 41,
	169, 255, 0, 0, 0, 13, 120, 1, 237, 224, 1, 144,
	32, 146, 36, 73, 18, 139, 0, 0, 0, 16, 0, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 68, 102, 102,
	102, 86, 117, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 78, 85, 85, 119, 119, 119, 119, 119, 247,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	255, 255, 255, 255, 255, 255, 0, 108, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 120, 1, 5, 224, 1, 144, 36, 73, 146, 36, 73,
	18, 139, 170, 153, 187, 71, 68, 68, 154, 41, 120, 1,
	0, 255, 0, 0, 255, 1, 0, 0, 93, 41, 41, 41,
	169, 255, 0, 0, 0, 13, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 170, 153, 187, 71, 68, 68, 102, 102, 102,
	86, 117, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 78, 85, 85, 119, 119, 119, 119, 119, 247, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 255,
	255, 255, 255, 255, 255, 0, 108, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 203, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	120, 1, 5, 224, 1, 144, 36, 73, 146, 36, 73, 18,
	139, 170, 153, 187, 71, 68, 68, 154, 41, 120, 1, 0,
	255, 0, 0, 255, 1, 0, 0, 40, 41, 41, 41, 169,
	255, 0, 0, 0, 13, 120, 1, 237, 224, 1, 144, 32,
	146, 36, 73, 18, 139, 0, 0, 0, 16, 0, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 63, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 68, 102, 102, 102,
	86, 117, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 78, 85, 85, 119, 119, 119, 119, 119, 247, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 255,
	255, 255, 255, 255, 255, 0, 108, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204, 204,
	120, 1, 5, 224, 1, 144, 36, 73, 146, 36, 73, 18,
	139, 170, 153, 187, 71, 68, 68, 154, 41, 120, 1, 0,
	255, 0, 0, 255, 1, 0, 0, 93, 41, 41, 41, 169,
	255, 0, 0, 0, 13, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239, 239,
	255, 255, 255, 255, 255, 255, 0, 108, 144, 32, 146, 36,
	73, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147, 147,
	147, 147, 147, 147, 147, 147, 147, 147, 18, 139, 0, 0,
	0, 16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 1, 5, 224, 1, 144, 36,
	73, 146, 36, 73, 18, 139, 170, 153, 187, 71, 68, 68,
	154, 41, 120, 1, 0, 255, 0, 0, 255, 1, 0, 0,
	93, 41, 41, 41, 169, 255, 0, 0, 0, 13, 120, 1,
	237, 224, 1, 144, 32, 146, 36, 73, 18, 139, 0, 0,
	0, 16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 5, 224, 1, 144,
	36, 73, 146, 36, 73, 18, 139, 187, 71, 68, 68, 154,
	41, 120, 1, 0, 255, 0, 0, 255, 1, 0, 0, 93,
	41, 41, 41, 169, 255, 0, 0, 0, 13, 120, 1, 237,
	224, 1, 144, 0, 68, 102, 230, 102, 86, 85, 85, 85,
	85, 119, 119, 119, 119, 119, 247, 204, 204, 204, 204, 204,
	0, 0, 204, 204,
}

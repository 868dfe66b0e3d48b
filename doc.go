/*
Package inflate implements a streaming, resumable DEFLATE/zlib decompressor
(RFC 1950 + RFC 1951).

A Decoder consumes a zlib-wrapped DEFLATE byte stream supplied incrementally
through repeated calls to Read, writes the decompressed bytes into a
caller-supplied buffer, and verifies the stream's Adler-32 checksum once the
final block has been consumed. Neither the input nor the output buffer
passed to a single Read call needs to be large enough to finish the stream:
the Decoder suspends at any point and resumes exactly where it left off on
the next call.

	d := inflate.NewDecoder()
	out := make([]byte, 2, 4096) // keep at least two zeroed tail bytes
	for !d.Done() {
		consumed, produced, err := d.Read(in, out, len(out)-2, true)
		...
	}

For most callers, DecompressToVec is simpler: it drives a Decoder to
completion and returns the decompressed bytes in one call.

This package implements only decompression. The matching encoder, and a
"compress the whole thing into memory" convenience wrapper, are treated as
external collaborators and are out of scope here.
*/
package inflate

// Package archive reads and writes datasets.
//
// The binary archive is a 40-byte header (see package section) followed by
// a compressed payload. The payload holds the vocabulary, the optional event
// feature table, the optional sequence names and one record per sequence.
// Decoding verifies the xxHash64 checksum of the payload and the vocabulary
// fingerprint stored in the header.
//
// A JSON form is also provided for interchange with other tooling.
package archive

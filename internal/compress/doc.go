// Package compress wraps the stream codecs used for table files and blobs.
//
// The codec is normally chosen from the file name:
//
//	.gz          gzip (klauspost/compress)
//	.zst, .zstd  zstd (klauspost/compress)
//	.lz4         lz4 frame format (pierrec/lz4)
//
// Any other name is stored uncompressed.
package compress

package nbt

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ModifiedUTF8 exposes Java's modified UTF-8 (the CESU-8-like variant used
// by the binary NBT format: U+0000 encoded as 0xC0 0x80, and supplementary
// planes encoded as a pair of 3-byte surrogate sequences rather than a
// direct 4-byte UTF-8 run) as a golang.org/x/text/encoding-shaped pair of
// transform.Transformer implementations. The teacher (hivekit) already
// depends on golang.org/x/text for its own value-name decoding, so the
// Transformer scaffolding is reused here; no package in the ecosystem
// implements this exact Java variant, so the conversion logic itself is
// hand-written.
var ModifiedUTF8 mutf8Encoding

type mutf8Encoding struct{}

func (mutf8Encoding) NewDecoder() *mutf8Decoder { return &mutf8Decoder{} }
func (mutf8Encoding) NewEncoder() *mutf8Encoder { return &mutf8Encoder{} }

// DecodeString converts modified-UTF-8 (or plain UTF-8 — every ASCII byte
// sequence and most of strict UTF-8 already parses the same way) bytes into
// a Go string, replacing invalid sequences with U+FFFD rather than failing,
// per spec.md §9.
func DecodeString(b []byte) string {
	out, _, _ := transform.Bytes(ModifiedUTF8.NewDecoder(), b)
	return string(out)
}

// EncodeString converts a Go string into modified-UTF-8 bytes, suitable for
// writing back into a binary NBT String tag.
func EncodeString(s string) []byte {
	out, _, _ := transform.Bytes(ModifiedUTF8.NewEncoder(), []byte(s))
	return out
}

type mutf8Decoder struct{ transform.NopResetter }

// Transform decodes modified UTF-8 from src into UTF-8 in dst. It never
// consumes a source byte sequence it cannot fully translate into dst, so
// transform.Bytes can retry with a larger destination buffer.
func (mutf8Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]

		switch {
		case c < 0x80:
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++

		case c&0xE0 == 0xC0: // 2-byte sequence
			if nSrc+2 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if !writeRuneError(dst, &nDst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nSrc++
				continue
			}
			if src[nSrc+1]&0xC0 != 0x80 {
				if !writeRuneError(dst, &nDst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nSrc++
				continue
			}
			r := (rune(c&0x1F) << 6) | rune(src[nSrc+1]&0x3F)
			if !writeRune(dst, &nDst, r) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nSrc += 2

		case c&0xF0 == 0xE0: // 3-byte sequence, possibly half of a surrogate pair
			if nSrc+3 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if !writeRuneError(dst, &nDst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nSrc++
				continue
			}
			if src[nSrc+1]&0xC0 != 0x80 || src[nSrc+2]&0xC0 != 0x80 {
				if !writeRuneError(dst, &nDst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nSrc++
				continue
			}
			r := (rune(c&0x0F) << 12) | (rune(src[nSrc+1]&0x3F) << 6) | rune(src[nSrc+2]&0x3F)

			if utf16.IsSurrogate(r) {
				// Might be the high half of a supplementary-plane pair encoded
				// as two consecutive 3-byte sequences.
				if nSrc+6 <= len(src) && src[nSrc+3]&0xF0 == 0xE0 &&
					src[nSrc+4]&0xC0 == 0x80 && src[nSrc+5]&0xC0 == 0x80 {
					r2 := (rune(src[nSrc+3]&0x0F) << 12) | (rune(src[nSrc+4]&0x3F) << 6) | rune(src[nSrc+5]&0x3F)
					combined := utf16.DecodeRune(r, r2)
					if combined != utf8.RuneError {
						if !writeRune(dst, &nDst, combined) {
							return nDst, nSrc, transform.ErrShortDst
						}
						nSrc += 6
						continue
					}
				}
				if !atEOF && nSrc+6 > len(src) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if !writeRuneError(dst, &nDst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nSrc += 3
				continue
			}

			if !writeRune(dst, &nDst, r) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nSrc += 3

		default:
			if !writeRuneError(dst, &nDst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

func writeRune(dst []byte, nDst *int, r rune) bool {
	if r == 0 {
		if *nDst+1 > len(dst) {
			return false
		}
		dst[*nDst] = 0
		*nDst++
		return true
	}
	n := utf8.RuneLen(r)
	if n < 0 {
		return writeRuneError(dst, nDst)
	}
	if *nDst+n > len(dst) {
		return false
	}
	*nDst += utf8.EncodeRune(dst[*nDst:], r)
	return true
}

func writeRuneError(dst []byte, nDst *int) bool {
	return writeRune(dst, nDst, utf8.RuneError)
}

type mutf8Encoder struct{ transform.NopResetter }

// Transform encodes UTF-8 src into modified-UTF-8 dst: NUL becomes 0xC0 0x80,
// and runes outside the Basic Multilingual Plane are re-split into a UTF-16
// surrogate pair, each half written as its own 3-byte sequence.
func (mutf8Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && nSrc+size >= len(src) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			size = 1
		}

		switch {
		case r == 0:
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst], dst[nDst+1] = 0xC0, 0x80
			nDst += 2
		case r < 0x80:
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = byte(r)
			nDst++
		case r < 0x800:
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = 0xC0 | byte(r>>6)
			dst[nDst+1] = 0x80 | byte(r&0x3F)
			nDst += 2
		case r <= 0xFFFF:
			if nDst+3 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			encode3(dst[nDst:], r)
			nDst += 3
		default:
			hi, lo := utf16.EncodeRune(r)
			if nDst+6 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			encode3(dst[nDst:], hi)
			encode3(dst[nDst+3:], lo)
			nDst += 6
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

func encode3(dst []byte, r rune) {
	dst[0] = 0xE0 | byte(r>>12)
	dst[1] = 0x80 | byte((r>>6)&0x3F)
	dst[2] = 0x80 | byte(r&0x3F)
}

package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Root = "$"
	Sep  = '/'
)

var ErrPointer = errors.New("bad pointer")

func needsPercent(c byte) bool {
	switch c {
	case '"', '\'', ' ', '&', '$', '%', 0x7f:
		return true
	}
	return c < 0x20
}

const hexDigits = "0123456789ABCDEF"

// Escape encodes a single key so it can be used as a segment.
func Escape(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '~':
			b.WriteString("~0")
		case c == Sep:
			b.WriteString("~1")
		case needsPercent(c):
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Malformed escapes are kept literally.
func Unescape(seg string) string {
	if !strings.ContainsAny(seg, "~%") {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg))
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '~' && i+1 < len(seg) && seg[i+1] == '0':
			b.WriteByte('~')
			i++
		case c == '~' && i+1 < len(seg) && seg[i+1] == '1':
			b.WriteByte(Sep)
			i++
		case c == '%' && i+2 < len(seg) && isHex(seg[i+1]) && isHex(seg[i+2]):
			b.WriteByte(unhex(seg[i+1])<<4 | unhex(seg[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// ToPointer returns the identifier of path.
func ToPointer(path ...string) string {
	return Join(Root, path...)
}

// Join appends escaped keys to parent.
func Join(parent string, keys ...string) string {
	if len(keys) == 0 {
		return parent
	}
	var b strings.Builder
	b.WriteString(parent)
	for _, k := range keys {
		b.WriteByte(Sep)
		b.WriteString(Escape(k))
	}
	return b.String()
}

// JoinIndex appends an array index to parent.
func JoinIndex(parent string, i int) string {
	return parent + string(Sep) + strconv.Itoa(i)
}

// JoinSegment appends an already escaped or synthetic segment.
func JoinSegment(parent, seg string) string {
	return parent + string(Sep) + seg
}

// Segments splits id into its escaped segments.
func Segments(id string) ([]string, error) {
	if id == Root {
		return []string{}, nil
	}
	if !strings.HasPrefix(id, Root+string(Sep)) {
		return nil, fmt.Errorf("%w: %q", ErrPointer, id)
	}
	return strings.Split(id[len(Root)+1:], string(Sep)), nil
}

// ToPath returns the unescaped keys of id. Occurrence suffixes are
// dropped; error segments are returned as is.
func ToPath(id string) ([]string, error) {
	segs, err := Segments(id)
	if err != nil {
		return nil, err
	}
	for i, seg := range segs {
		segs[i] = segmentKey(seg)
	}
	return segs, nil
}

func segmentKey(seg string) string {
	if IsErrorSegment(seg) {
		return seg
	}
	if k, _, ok := Occurrence(seg); ok {
		return Unescape(k)
	}
	return Unescape(seg)
}

// Parent returns the identifier of the parent of id.
func Parent(id string) (string, bool) {
	i := strings.LastIndexByte(id, Sep)
	if i < 0 {
		return "", false
	}
	return id[:i], true
}

// IsParent reports whether parent is the direct parent of child.
func IsParent(parent, child string) bool {
	p, ok := Parent(child)
	return ok && p == parent
}

// IsAncestor reports whether anc is a proper ancestor of id.
func IsAncestor(anc, id string) bool {
	return len(id) > len(anc)+1 && strings.HasPrefix(id, anc) && id[len(anc)] == Sep
}

// LastSegment returns the escaped last segment of id.
func LastSegment(id string) (string, bool) {
	i := strings.LastIndexByte(id, Sep)
	if i < 0 {
		return "", false
	}
	return id[i+1:], true
}

// LastKey returns the unescaped last key of id, or false for the root.
func LastKey(id string) (string, bool) {
	seg, ok := LastSegment(id)
	if !ok {
		return "", false
	}
	return segmentKey(seg), true
}

// Depth is the number of segments in id.
func Depth(id string) int {
	return strings.Count(id, string(Sep))
}

// OccurrenceSegment names occurrence n of key when it is not the last.
func OccurrenceSegment(key string, n int) string {
	return Escape(key) + "$" + strconv.Itoa(n)
}

// Occurrence splits an occurrence segment into its escaped key and
// occurrence index.
func Occurrence(seg string) (string, int, bool) {
	i := strings.LastIndexByte(seg, '$')
	if i <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(seg[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return seg[:i], n, true
}

// ErrorSegment names an error member starting at offset.
func ErrorSegment(offset int) string {
	return "$" + strconv.Itoa(offset)
}

func IsErrorSegment(seg string) bool {
	if len(seg) < 2 || seg[0] != '$' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// ToJSONPointer converts id to an RFC 6901 JSON pointer. Synthetic
// segments have no JSON pointer form.
func ToJSONPointer(id string) (string, error) {
	segs, err := Segments(id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, seg := range segs {
		if strings.IndexByte(seg, '$') >= 0 {
			return "", fmt.Errorf("%w: synthetic segment %q in %q", ErrPointer, seg, id)
		}
		k := Unescape(seg)
		k = strings.ReplaceAll(k, "~", "~0")
		k = strings.ReplaceAll(k, "/", "~1")
		b.WriteByte('/')
		b.WriteString(k)
	}
	return b.String(), nil
}

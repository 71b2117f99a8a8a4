package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Scanner is a read-only window onto a source string. Advancing a scanner
// never copies the source; it only moves the window.
type Scanner struct {
	src         *source // the source the scanner is drawing from
	sliceStart  int     // the start of the slice visible to the scanner
	sliceLength int     // the length of the slice visible to the scanner
}

type source struct {
	origin string // the entire source string
	f      string // the source filename
}

// TreeElement is a value in a parse tree: either a Scanner holding matched
// text or a node produced by a rule.
type TreeElement interface {
	IsTreeElement()
}

func (Scanner) IsTreeElement() {}

func NewScanner(str string) *Scanner {
	return &Scanner{&source{origin: str}, 0, len(str)}
}

func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{&source{str, filename}, 0, len(str)}
}

func NewScannerAt(str string, offset, size int) *Scanner {
	return &Scanner{&source{origin: str}, offset, size}
}

// - Scanner

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.f
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

func (s Scanner) IsNil() bool {
	return s.src == nil
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

// Len is the number of bytes visible to the scanner.
func (s Scanner) Len() int {
	return s.sliceLength
}

// AtEnd reports whether the scanner has nothing left to consume.
func (s Scanner) AtEnd() bool {
	return s.sliceLength == 0
}

var (
	NoLimit      = -1
	DefaultLimit = 1
)

// Context renders the scanned text highlighted within its surrounding
// source, preceded by file:line:col. At most limitLines lines of context are
// shown either side unless limitLines is NoLimit.
func (s Scanner) Context(limitLines int) string {
	end := s.sliceStart + s.sliceLength
	lineno, colno := s.Position()

	aboveCxt := s.src.slice(0, s.sliceStart)
	belowCxt := s.src.slice(end, len(s.src.origin)-end)
	if limitLines != NoLimit {
		a := strings.Split(aboveCxt, "\n")
		if len(a) > limitLines {
			aboveCxt = strings.Join(a[len(a)-limitLines-1:], "\n")
		}
		b := strings.Split(belowCxt, "\n")
		if len(b) > limitLines {
			belowCxt = strings.Join(b[:limitLines], "\n")
		}
	}

	return fmt.Sprintf("\n\033[1;37m%s:%d:%d:\033[0m\n%s\033[1;31m%s\033[0m%s",
		s.Filename(),
		lineno,
		colno,
		aboveCxt,
		s.slice(),
		belowCxt,
	)
}

// Excerpt returns up to n bytes of the visible text, with an ellipsis if
// more remains. The cut never splits a UTF-8 sequence.
func (s Scanner) Excerpt(n int) string {
	text := s.String()
	if len(text) > n {
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		return text[:n] + "..."
	}
	return text
}

// The position of the start of the scanner within the original source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// The 1-indexed line and column number of the start of the scanner within the original source.
func (s Scanner) Position() (int, int) {
	if s.src == nil {
		return 1, 1
	}
	return lineColumn(s.src.origin, s.sliceStart)
}

// Location formats the scanner position as file:line:col, omitting the file
// when there is none.
func (s Scanner) Location() string {
	line, col := s.Position()
	if f := s.Filename(); f != "" {
		return fmt.Sprintf("%s:%d:%d", f, line, col)
	}
	return fmt.Sprintf("%d:%d", line, col)
}

// The slice that is visible to the scanner
func (s Scanner) slice() string {
	return s.src.slice(s.sliceStart, s.sliceLength)
}

func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{s.src, s.sliceStart + a, b - a}
}

func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{s.src, s.sliceStart + i, s.sliceLength - i}
}

// Eat returns a scanner containing the next i bytes and advances s past them.
func (s *Scanner) Eat(i int, eaten *Scanner) *Scanner {
	eaten.src = s.src
	eaten.sliceStart = s.sliceStart
	eaten.sliceLength = i
	*s = *s.Skip(i)
	return s
}

// EatByte eats a single byte if it equals c.
func (s *Scanner) EatByte(c byte, eaten *Scanner) bool {
	if s.sliceLength > 0 && s.src.origin[s.sliceStart] == c {
		s.Eat(1, eaten)
		return true
	}
	return false
}

func (s *Scanner) EatString(str string, eaten *Scanner) bool {
	if strings.HasPrefix(s.slice(), str) {
		s.Eat(len(str), eaten)
		return true
	}
	return false
}

// EatRegexp eats the text matching a regexp, populating match (if != nil) with
// the whole match and captures (if != nil) with any captured groups. Returns
// n as the number of captures set and ok iff a match was found.
func (s *Scanner) EatRegexp(re *regexp.Regexp, match *Scanner, captures []Scanner) (n int, ok bool) {
	if loc := re.FindStringSubmatchIndex(s.slice()); loc != nil {
		if loc[0] != 0 {
			panic(`re not \A-anchored`)
		}
		if match != nil {
			*match = *s.Slice(loc[0], loc[1])
		}
		skip := loc[1]
		loc = loc[2:]
		n = len(loc) / 2
		if len(captures) > n {
			captures = captures[:n]
		}
		for i := range captures {
			captures[i] = *s.Slice(loc[2*i], loc[2*i+1])
		}
		*s = *s.Skip(skip)
		return n, true
	}
	return 0, false
}

// - source

func (s *source) slice(i, length int) string {
	return s.origin[i : i+length]
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}

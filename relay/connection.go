package relay

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/starwars-explorer/swapi-graphql/errors"
)

const cursorPrefix = "arrayconnection:"

// ConnectionArgs are the standard connection arguments. The field set matches
// the (after, first, before, last) arguments every connection field declares.
type ConnectionArgs struct {
	After  *string
	First  *int32
	Before *string
	Last   *int32
}

// Window is the page of an array selected by ConnectionArgs: the half-open
// range [Start, End) plus the page info flags.
type Window struct {
	Start           int
	End             int
	HasPreviousPage bool
	HasNextPage     bool
}

// Len returns the number of edges in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// OffsetToCursor returns the opaque cursor of an array position.
func OffsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// CursorToOffset reverses OffsetToCursor.
func CursorToOffset(cursor string) (int, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid cursor %q", cursor)
	}
	s := string(b)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, errors.New("invalid cursor " + strconv.Quote(cursor))
	}
	offset, err := strconv.Atoi(strings.TrimPrefix(s, cursorPrefix))
	if err != nil || offset < 0 {
		return 0, errors.New("invalid cursor " + strconv.Quote(cursor))
	}
	return offset, nil
}

func offsetWithDefault(cursor *string, def int) int {
	if cursor == nil {
		return def
	}
	offset, err := CursorToOffset(*cursor)
	if err != nil {
		return def
	}
	return offset
}

// Paginate selects the page of an array of the given length. Cursors that do
// not decode are ignored, as graphql-relay does, and offsets past the end are
// clamped to it. Negative first or last are rejected.
func Paginate(length int, args ConnectionArgs) (Window, error) {
	if args.First != nil && *args.First < 0 {
		return Window{}, errors.New(`argument "first" must be a non-negative integer`)
	}
	if args.Last != nil && *args.Last < 0 {
		return Window{}, errors.New(`argument "last" must be a non-negative integer`)
	}

	beforeOffset := min(offsetWithDefault(args.Before, length), length)
	afterOffset := min(offsetWithDefault(args.After, -1), length)

	start := afterOffset + 1
	end := min(beforeOffset, length)
	if args.First != nil {
		end = min(end, start+int(*args.First))
	}
	if args.Last != nil {
		start = max(start, end-int(*args.Last))
	}

	lower := 0
	if args.After != nil {
		lower = afterOffset + 1
	}
	upper := length
	if args.Before != nil {
		upper = beforeOffset
	}

	w := Window{
		Start:           min(start, length),
		End:             end,
		HasPreviousPage: args.Last != nil && start > lower,
		HasNextPage:     args.First != nil && end < upper,
	}
	if w.End < w.Start {
		w.End = w.Start
	}
	return w, nil
}

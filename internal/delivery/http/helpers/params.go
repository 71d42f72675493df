package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"weeklyslots/internal/calendar"
)

// ErrAmbiguousOffset is returned when both offset and tz are supplied.
var ErrAmbiguousOffset = errors.New("pass either offset or tz, not both")

// ParseUUIDPath returns the named path value as a lowercase hyphenated UUID. Uppercase,
// braced, urn:uuid: and unhyphenated forms are accepted and normalized so they compare equal
// to stored ids.
func ParseUUIDPath(r *http.Request, name string) (string, error) {
	v := r.PathValue(name)
	if v == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	u, err := uuid.Parse(v)
	if err != nil {
		return "", fmt.Errorf("invalid %s", name)
	}
	return u.String(), nil
}

// ResolveViewerOffset returns a UTC offset in minutes from either an explicit offset or an
// IANA zone name. A zone is resolved at now, so DST follows the viewer's current rules.
// Neither set means UTC.
func ResolveViewerOffset(offset, zone string, now time.Time) (int, error) {
	switch {
	case offset != "" && zone != "":
		return 0, ErrAmbiguousOffset
	case zone != "":
		return calendar.ResolveOffset(zone, now)
	case offset != "":
		minutes, err := strconv.Atoi(offset)
		if err != nil {
			return 0, fmt.Errorf("offset must be an integer number of minutes: %q", offset)
		}
		if err := calendar.ValidateOffset(minutes); err != nil {
			return 0, err
		}
		return minutes, nil
	default:
		return 0, nil
	}
}

// ParseViewerOffset reads the offset or tz query parameter.
func ParseViewerOffset(r *http.Request) (int, error) {
	q := r.URL.Query()
	return ResolveViewerOffset(q.Get("offset"), q.Get("tz"), time.Now())
}

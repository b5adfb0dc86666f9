package tan

import (
	"fmt"
	"net/url"
)

// endpoint identifies one upstream GET resource.
type endpoint int

const (
	epNearbyStops endpoint = iota
	epAllStops
	epSchedule
	epScheduleOnDate
	epWaitTimes
	epWaitTimesLimited
	epWaitTimesLine
)

// endpointTemplates is the full table of upstream paths. There is no
// dynamic endpoint discovery; every operation resolves to exactly one
// template here.
var endpointTemplates = map[endpoint]string{
	epNearbyStops:      "/arrets.json/%s/%s",
	epAllStops:         "/arrets.json",
	epSchedule:         "/horairesarret.json/%s/%s/%s",
	epScheduleOnDate:   "/horairesarret.json/%s/%s/%s/%s",
	epWaitTimes:        "/tempsattente.json/%s",
	epWaitTimesLimited: "/tempsattentelieu.json/%s/%s",
	epWaitTimesLine:    "/tempsattentelieu.json/%s/%s/%s",
}

// path substitutes percent-encoded parameters into the endpoint template.
// An identifier containing a reserved character (e.g. a slash) stays a
// single path segment on the wire.
func (ep endpoint) path(params ...string) string {
	escaped := make([]any, len(params))
	for i, p := range params {
		escaped[i] = url.PathEscape(p)
	}
	return fmt.Sprintf(endpointTemplates[ep], escaped...)
}

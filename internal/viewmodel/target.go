package viewmodel

import "strings"

type TargetKind string

const (
	TargetNone     TargetKind = "none"
	TargetAnchor   TargetKind = "anchor"
	TargetView     TargetKind = "view"
	TargetExternal TargetKind = "external"
)

// Views that in-app navigation can switch to.
var namedViews = map[string]bool{
	"courses":     true,
	"gallery":     true,
	"instructors": true,
	"techniques":  true,
}

type Target struct {
	Kind TargetKind `json:"kind"`
	// Name is the anchor id or view name; URL is set for external targets.
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ResolveTarget classifies a section url: "#gallery" is a named view,
// "#schedule" an in-page anchor, anything else an external link.
func ResolveTarget(url string) Target {
	u := strings.TrimSpace(url)

	switch {
	case u == "" || u == "#":
		return Target{Kind: TargetNone}
	case strings.HasPrefix(u, "#"):
		name := strings.TrimPrefix(u, "#")
		if namedViews[name] {
			return Target{Kind: TargetView, Name: name}
		}
		return Target{Kind: TargetAnchor, Name: name}
	default:
		return Target{Kind: TargetExternal, URL: u}
	}
}

package api

import (
	"net/url"
	"regexp"
	"strings"
)

var urlRegex = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// ScrapeLinks returns all http(s) links found in free text
func ScrapeLinks(text string) []string {
	return urlRegex.FindAllString(text, -1)
}

// Target is where a team's albumlist lives; either a literal url or the name of a platform managed app
type Target interface {
	String() string
	isTarget()
}

// URLTarget is an externally reachable albumlist
type URLTarget string

func (t URLTarget) String() string { return string(t) }
func (URLTarget) isTarget()        {}

// AppName returns the first label of the host, which is the app name for platform hosted urls
func (t URLTarget) AppName() string {
	u, err := url.Parse(string(t))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.Split(u.Hostname(), ".")[0]
}

// ManagedTarget is a platform managed app that has not been confirmed ready yet
type ManagedTarget string

func (t ManagedTarget) String() string { return string(t) }
func (ManagedTarget) isTarget()        {}

// URL returns the externally reachable url of the managed app
func (t ManagedTarget) URL() URLTarget {
	return URLTarget("https://" + string(t) + ".herokuapp.com")
}

// ParseTarget turns a stored or user supplied value into a Target; empty values yield nil
func ParseTarget(raw string) Target {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if len(ScrapeLinks(raw)) > 0 {
		return URLTarget(raw)
	}
	return ManagedTarget(raw)
}

// FormatTarget is the inverse of ParseTarget
func FormatTarget(target Target) string {
	if target == nil {
		return ""
	}
	return target.String()
}

// AppName returns the platform app name a target refers to
func AppName(target Target) string {
	switch t := target.(type) {
	case ManagedTarget:
		return string(t)
	case URLTarget:
		return t.AppName()
	}
	return ""
}

package domain

import (
	"net/url"
	"strings"
)

const (
	// SearchBaseURL is the search engine endpoint queries are appended to.
	SearchBaseURL = "https://www.google.com/search"

	// DefaultLocation is used when the location is blank.
	DefaultLocation = "Remote"
)

// EffectiveLocation returns the trimmed location, or DefaultLocation if blank.
func EffectiveLocation(location string) string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return DefaultLocation
	}
	return loc
}

// BuildQuery returns the literal search query for one site:
//
//	site:<domain> AND "<jobTitle>" <location>
//
// The job title is quoted; the site and location terms are not.
func BuildQuery(domain, jobTitle, location string) string {
	var b strings.Builder
	b.WriteString("site:")
	b.WriteString(domain)
	b.WriteString(` AND "`)
	b.WriteString(jobTitle)
	b.WriteString(`" `)
	b.WriteString(EffectiveLocation(location))
	return b.String()
}

// componentUnescapes restores the characters a URI component leaves
// literal but QueryEscape encodes, and percent-encodes spaces.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s as one URI component. Spaces become
// %20, never +, and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay literal.
func EscapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// SearchURL encodes query as the q parameter of SearchBaseURL.
func SearchURL(query string) string {
	return SearchBaseURL + "?q=" + EscapeComponent(query)
}

// SearchURLs builds one search URL per site, preserving the order of sites.
func SearchURLs(sites []Site, jobTitle, location string) []string {
	urls := make([]string, 0, len(sites))
	for _, s := range sites {
		urls = append(urls, SearchURL(BuildQuery(s.Domain, jobTitle, location)))
	}
	return urls
}

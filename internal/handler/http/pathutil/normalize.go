// Package pathutil maps request paths onto a bounded set of metric labels.
package pathutil

import "strings"

// otherPath labels every path outside the known routes.
const otherPath = "other"

// docsPath labels the API documentation UI and all of its assets.
const docsPath = "/swagger"

var (
	newsPrefixes = []string{"/news", "/api/news"}
	newsRoutes   = []string{
		"/add-news",
		"/get-all-news",
		"/get-news-byId",
		"/get-slider-news",
		"/get-news-category",
		"/update-news",
		"/delete-news",
	}
	operationalPaths = []string{"/health", "/ready", "/live", "/metrics"}
)

var known = buildKnown()

func buildKnown() map[string]struct{} {
	m := make(map[string]struct{}, len(newsPrefixes)*len(newsRoutes)+len(operationalPaths))
	for _, p := range newsPrefixes {
		for _, r := range newsRoutes {
			m[p+r] = struct{}{}
		}
	}
	for _, p := range operationalPaths {
		m[p] = struct{}{}
	}
	return m
}

// NormalizePath returns path, without query string or trailing slash, when
// it is a route the service serves, and "other" for anything else. Scanners
// probing random URLs therefore cannot grow label cardinality.
//
//	NormalizePath("/news/get-all-news?pageNo=2") // "/news/get-all-news"
//	NormalizePath("/swagger/index.html")         // "/swagger"
//	NormalizePath("/wp-login.php")               // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if _, ok := known[path]; ok {
		return path
	}
	if path == docsPath || strings.HasPrefix(path, docsPath+"/") {
		return docsPath
	}
	return otherPath
}

// ExpectedCardinality is the number of distinct labels NormalizePath can
// return.
func ExpectedCardinality() int {
	return len(known) + 2
}

package request

import (
	"strings"

	router "github.com/julienschmidt/httprouter"
)

// Match reports whether a route pattern and a request URI path agree in
// segment count and literal-segment equality, and extracts the named
// parameters bound by the pattern.
//
// A pattern is a '/'-delimited sequence of literal segments and parameter
// segments wrapped in braces, e.g. "/api/user/{userId}/files". A parameter
// segment matches any single non-empty URI segment and binds its name to the
// segment value; a literal segment must equal the URI segment exactly
// (case-sensitive).
//
// Contract: trailing slashes are trimmed from both inputs before comparison,
// so "/a/b" and "/a/b/" are the same path. An empty URI segment never
// satisfies a parameter ("/api/user//files" does not match
// "/api/user/{userId}/files"). There are no optional segments, no regex
// constraints inside braces, and no multi-segment wildcards.
//
// Optimized to avoid slice allocations: both strings are walked in place and
// parameters are collected into a stack-allocated buffer.
func Match(pattern, uri string) (router.Params, bool) {
	pattern = strings.TrimRight(pattern, "/")
	uri = strings.TrimRight(uri, "/")

	// Fast path: exact literal match, no parameters to extract.
	if pattern == uri && !strings.ContainsRune(pattern, '{') {
		return nil, true
	}

	// Stack-allocated buffer covers typical routes without heap allocation.
	var paramBuf [8]router.Param
	params := paramBuf[:0]

	patternLen := len(pattern)
	uriLen := len(uri)
	patternIdx := 0
	uriIdx := 0

	// Skip leading slashes so both sides start at their first segment.
	if patternIdx < patternLen && pattern[patternIdx] == '/' {
		patternIdx++
	}
	if uriIdx < uriLen && uri[uriIdx] == '/' {
		uriIdx++
	}

	for patternIdx < patternLen && uriIdx < uriLen {
		segStart := patternIdx
		for patternIdx < patternLen && pattern[patternIdx] != '/' {
			patternIdx++
		}
		patternSeg := pattern[segStart:patternIdx]

		uriSegStart := uriIdx
		for uriIdx < uriLen && uri[uriIdx] != '/' {
			uriIdx++
		}
		uriSeg := uri[uriSegStart:uriIdx]

		if isParamSegment(patternSeg) {
			// Parameter segments never match an empty value.
			if uriSeg == "" {
				return nil, false
			}
			params = append(params, router.Param{
				Key:   patternSeg[1 : len(patternSeg)-1],
				Value: uriSeg,
			})
		} else if patternSeg != uriSeg {
			return nil, false
		}

		if patternIdx < patternLen && pattern[patternIdx] == '/' {
			patternIdx++
		}
		if uriIdx < uriLen && uri[uriIdx] == '/' {
			uriIdx++
		}
	}

	// Both sides must be fully consumed: differing segment counts never match.
	if patternIdx != patternLen || uriIdx != uriLen {
		return nil, false
	}

	return params, true
}

// isParamSegment reports whether a pattern segment is a brace-wrapped
// parameter placeholder such as "{userId}".
func isParamSegment(seg string) bool {
	return len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

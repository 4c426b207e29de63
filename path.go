package cfb

import (
	"path"
	"strings"
)

// NameChainFromPath splits a "/"-separated path into entry names. The
// empty path and "/" resolve to the root storage (an empty chain); a path
// escaping above the root also resolves to an empty chain.
func NameChainFromPath(s string) []string {
	s = path.Clean(s)
	if s == "" || s == "." || s == "/" {
		return []string{}
	}

	if s[0] == '/' {
		s = s[1:]
	}

	if strings.HasPrefix(s, "..") {
		return []string{}
	}

	return strings.Split(s, "/")
}

func PathFromNameChain(names []string) string {
	return "/" + strings.Join(names, "/")
}

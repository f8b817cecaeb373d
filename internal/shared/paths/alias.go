package paths

import "strings"

// ResolveAliased resolves aliasedPath against userHome and an explicit
// working directory without touching the OS.
//
// "" and "~" resolve to userHome. A "~/" prefix is replaced by the home
// path, keeping the separator of the remainder. Anything else, including
// "~foo", is completed against cwd: absolute input is kept as is and
// relative input is joined onto cwd.
func ResolveAliased(aliasedPath string, userHome, cwd FilePath) FilePath {
	if resolved, ok := resolveHomeAlias(aliasedPath, userHome); ok {
		return resolved
	}
	return cwd.Complete(aliasedPath)
}

// resolveHomeAlias handles the two alias forms. ok is false when
// aliasedPath carries no alias.
func resolveHomeAlias(aliasedPath string, userHome FilePath) (FilePath, bool) {
	if aliasedPath == "" || aliasedPath == HomePathLeafAlias {
		return userHome, true
	}
	if strings.HasPrefix(aliasedPath, HomePathAlias) {
		return New(userHome.AbsolutePath() + aliasedPath[1:]), true
	}
	return FilePath{}, false
}

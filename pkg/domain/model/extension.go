package model

import "strings"

// ExtensionSet is an allow-list of file name suffixes eligible for content
// extraction. Matching is case-sensitive.
type ExtensionSet []string

// DefaultExtensions is the allow-list used when nothing else is configured
var DefaultExtensions = ExtensionSet{
	// source code
	".py", ".pyi", ".go", ".rs", ".c", ".h", ".cc", ".cpp", ".hpp", ".cs",
	".java", ".kt", ".kts", ".scala", ".swift", ".m", ".rb", ".php", ".pl",
	".lua", ".r", ".dart", ".ex", ".exs", ".erl", ".hs", ".clj", ".elm",
	".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue", ".svelte",
	".sh", ".bash", ".zsh", ".fish", ".ps1", ".bat", ".sql", ".proto",
	".graphql",
	// markup and docs
	".html", ".htm", ".css", ".scss", ".sass", ".less", ".xml", ".svg",
	".md", ".rst", ".txt", ".adoc", ".tex",
	// config
	".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf", ".env",
	".properties", ".gradle", ".tf", ".hcl", ".mod", ".sum", ".lock",
	".gitignore", ".dockerignore", ".editorconfig", "Dockerfile", "Makefile",
}

// NewExtensionSet normalises exts so that every entry except well-known
// extension-less file names carries a leading dot. Blank and duplicate
// entries are dropped; order is kept.
func NewExtensionSet(exts []string) ExtensionSet {
	seen := make(map[string]struct{}, len(exts))
	set := make(ExtensionSet, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") && !isBareFileName(ext) {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		set = append(set, ext)
	}

	return set
}

// isBareFileName reports names like "Dockerfile" that are matched as a whole
// file name rather than as an extension: capitalised, mixed case, no dot.
// All-caps entries such as "MD" are extensions.
func isBareFileName(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' || strings.Contains(s, ".") {
		return false
	}
	return strings.ToUpper(s) != s
}

// Match reports whether name ends with one of the allowed suffixes
func (s ExtensionSet) Match(name string) bool {
	for _, ext := range s {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

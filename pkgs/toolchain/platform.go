package toolchain

import "fmt"

// Platform is the family of systems a toolchain targets.
type Platform int

const (
	Generic Platform = iota
	Apple
	Windows
	Web
)

var platformNames = [...]string{
	Generic: "generic",
	Apple:   "apple",
	Windows: "windows",
	Web:     "web",
}

func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// ParsePlatform maps a platform name back to its value. Empty means Generic.
func ParsePlatform(s string) (Platform, error) {
	if s == "" {
		return Generic, nil
	}
	for i, name := range platformNames {
		if name == s {
			return Platform(i), nil
		}
	}
	return Generic, fmt.Errorf("unknown platform %q", s)
}

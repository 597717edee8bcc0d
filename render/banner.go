package render

import "fmt"

// Version is the default version shown in the welcome banner
const Version = "0.0.1"

// WelcomeBanner returns the banner text for the given version
func WelcomeBanner(version string) string {
	if version == "" {
		version = Version
	}
	return fmt.Sprintf("TextEditor -- version %s", version)
}

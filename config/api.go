package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Health endpoint stays public; everything under /api needs credentials
	return []string{"/health"}
}

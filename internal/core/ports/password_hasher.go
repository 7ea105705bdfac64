package ports

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	// Verify reports whether secret matches digest. A malformed digest counts
	// as a mismatch, never an error.
	Verify(secret, digest string) bool
}

package ports

// PasswordHasher is the one-way credential hashing capability.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

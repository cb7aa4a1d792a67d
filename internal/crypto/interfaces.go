package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_hasher_mock.go -package=mock

// CredentialHasher derives and verifies the one-way PIN credential stored
// with every user. It knows nothing about PIN format rules; callers
// validate the PIN before hashing it.
type CredentialHasher interface {
	// DeriveCredential hashes pin with salt. A nil salt makes the hasher
	// draw a fresh 16-byte salt from the OS CSPRNG. The result is
	// deterministic for a given (pin, salt) pair.
	DeriveCredential(pin string, salt []byte) (Credential, error)

	// VerifyCredential recomputes the hash of pin with the stored base64
	// salt and compares it to the stored base64 hash in constant time.
	// Malformed encodings are reported as [ErrMalformedEncoding].
	VerifyCredential(pin, saltB64, hashB64 string) (bool, error)
}

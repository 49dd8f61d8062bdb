// Package crypto implements Doka's symmetric crypto core: XChaCha20-Poly1305
// sealing with a per-operation Argon2id key derivation, and bcrypt password
// hashing for appuser accounts. The derivation step is what lets a single
// 43-character key string (a CommonEdibleKey or a CustomerKey) be used
// directly as AEAD key material without ever storing the raw 32 bytes.
package crypto

const (
	// NonceSize is the XChaCha20-Poly1305 nonce length. The nonce doubles as
	// the KDF salt for every seal/open call.
	NonceSize = 24

	// TagSize is the Poly1305 authentication tag length appended to every
	// ciphertext.
	TagSize = 16

	// KeySize is the derived AEAD key length (256-bit).
	KeySize = 32

	// Overhead is the number of bytes a ciphertext carries beyond its
	// plaintext: the nonce prefix plus the trailing tag.
	Overhead = NonceSize + TagSize

	// KeyStringLength is the length, in random source characters, used to
	// build a canonical key before hashing it down to KeyStringEncodedLength.
	KeyStringLength = 1024

	// KeyStringEncodedLength is the length of the canonical base64url (no
	// padding) key string produced by GenerateKeyString: a SHA-256 digest is
	// always 32 bytes, which base64url-no-pad encodes to 43 characters.
	KeyStringEncodedLength = 43

	// Argon2 parameters for the per-operation key derivation. These mirror
	// the original derive_key(password, salt, 15, 1024, keysize): 15 passes,
	// 1024 KiB of memory, single-threaded, producing a KeySize key.
	argon2Time      = 15
	argon2MemoryKiB = 1024
	argon2Threads   = 1

	// DefaultBcryptCost is used for appuser.password_hash when no cost is
	// configured. Kept low deliberately: bcrypt cost is a latency/security
	// tradeoff each deployment should be able to tune.
	DefaultBcryptCost = 4
)

const keyStringAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

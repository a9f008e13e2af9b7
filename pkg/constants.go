package dupmirror

// Hash type constants
const (
	HashTypeSHA1   uint16 = 1 // SHA-1 (20 bytes)
	HashTypeSHA256 uint16 = 2 // SHA-256 (32 bytes)
	HashTypeSHA512 uint16 = 3 // SHA-512 (64 bytes)
)

// Hash size constants
const (
	HashSizeSHA1   = 20 // SHA-1 hash size in bytes
	HashSizeSHA256 = 32 // SHA-256 hash size in bytes
	HashSizeSHA512 = 64 // SHA-512 hash size in bytes
)

// DefaultBlockSize is the read block size used when hashing file content
const DefaultBlockSize = 64 * 1024

// DefaultHashAlgorithm is the algorithm used when no config overrides it
const DefaultHashAlgorithm = "sha1"

// Strategy codes accepted by -t and the [compare] config section
const (
	StrategyCodeName = "n"
	StrategyCodeSize = "s"
	StrategyCodeHash = "h"
)

// DefaultStrategyCode is the strategy used when neither -t nor config picks one
const DefaultStrategyCode = StrategyCodeSize

// Exit codes used by the CLI
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// HashTypeName returns the human-readable name for a hash type
func HashTypeName(hashType uint16) string {
	switch hashType {
	case HashTypeSHA1:
		return "sha1"
	case HashTypeSHA256:
		return "sha256"
	case HashTypeSHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

package domain

const (
	// Legacy frame size triple: lens width, bridge, temple, e.g. "46□24-145"
	// or "46-24-145". Vendors print the box either way.
	SIZE_LABEL_PATTERN = `^[0-9]{2}\s*[-□]\s*[0-9]{2}\s*-\s*[0-9]{3}$`

	// Content hashes are lowercase hex-encoded SHA-256 digests
	CONTENT_HASH_LENGTH = 64
)

package domain

import "errors"

// ============================================================================
// Schema Errors
// ============================================================================

var (
	ErrSchemaNotLoaded   = errors.New("schema not loaded yet")
	ErrSchemaFileMissing = errors.New("schema file not found")
	ErrMissingAPIKey     = errors.New("steam API key is required to fetch schema from Steam")
	ErrSteamUnavailable  = errors.New("steam API request failed")
	ErrInvalidResponse   = errors.New("invalid schema response from Steam")
	ErrFileOnlyMode      = errors.New("manager is in file-only mode")
)

// ============================================================================
// Lookup Errors
// ============================================================================

var (
	ErrItemNotFound   = errors.New("item not found in schema")
	ErrEffectNotFound = errors.New("particle effect not found in schema")
	ErrInvalidName    = errors.New("item name is required")
)

// ============================================================================
// SKU Errors
// ============================================================================

var (
	ErrInvalidSKU        = errors.New("invalid SKU")
	ErrUnknownSKUPart    = errors.New("unknown SKU part")
	ErrInvalidWearTier   = errors.New("wear tier must be between 1 and 5")
	ErrInvalidKillstreak = errors.New("killstreak tier must be between 1 and 3")
)

// ============================================================================
// Snapshot Errors
// ============================================================================

var (
	ErrSnapshotNotFound = errors.New("schema snapshot not found")
	ErrDatabaseDisabled = errors.New("snapshot history requires a database")
)

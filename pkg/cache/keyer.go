package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/gridflow/pkg/grid"
)

// =============================================================================
// Keys
// =============================================================================

// Keyer generates cache keys for the two cached artifact kinds. Every key
// embeds the environment fingerprint: layouts and measurements are only
// valid for the viewport they were computed in.
type Keyer interface {
	// MeasureKey identifies one measured prototype size: the strategy
	// configuration fingerprint plus the environment.
	MeasureKey(configFingerprint string, env grid.Environment) string

	// LayoutKey identifies a full arranged layout: the manifest content
	// hash plus the environment.
	LayoutKey(manifestHash string, env grid.Environment) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// MeasureKey generates a key for a cached measurement.
func (DefaultKeyer) MeasureKey(configFingerprint string, env grid.Environment) string {
	return hashKey("measure", configFingerprint, env.Fingerprint())
}

// LayoutKey generates a key for a cached layout.
func (DefaultKeyer) LayoutKey(manifestHash string, env grid.Environment) string {
	return hashKey("layout", manifestHash, env.Fingerprint())
}

// ScopedKeyer wraps a Keyer with a prefix so multiple manifests or users
// can share one backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// MeasureKey generates a prefixed measurement key.
func (k *ScopedKeyer) MeasureKey(configFingerprint string, env grid.Environment) string {
	return k.prefix + k.inner.MeasureKey(configFingerprint, env)
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(manifestHash string, env grid.Environment) string {
	return k.prefix + k.inner.LayoutKey(manifestHash, env)
}

// =============================================================================
// Hashing
// =============================================================================

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

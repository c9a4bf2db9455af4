package constants

// Redis key layout
const (
	// KeyMechanicGeo is the geo set of currently available mechanics
	KeyMechanicGeo = "mechanics:geo"

	// KeyIdentity is the per-user identity cache entry (format: user ID)
	KeyIdentity = "identity:%s"
)

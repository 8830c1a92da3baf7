package schema

const (
	ProfileCollection = "profiles"
)

// Profile - per-user state kept in mongo. Only the last known location is
// maintained by this service; identity lives in the account system.
type Profile struct {
	AccountNumber string   `bson:"account_number"`
	Location      *GeoJSON `bson:"location,omitempty"`
	LastUpdated   int64    `bson:"ts"`
}

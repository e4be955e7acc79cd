package model

// ZoneID represents a zone flag type.
// Each creature keeps a bitfield of active zone flags in an atomic.Uint32.
type ZoneID uint8

const (
	ZoneIDPVP     ZoneID = iota // arena, siege during combat
	ZoneIDPeace                 // towns, safe areas
	ZoneIDSiege                 // castle siege area
	ZoneIDTown                  // town zone
	ZoneIDJail                  // jail zone
	ZoneIDNoStore               // no private store zone

	ZoneIDCount
)

// String returns the zone flag name.
func (z ZoneID) String() string {
	switch z {
	case ZoneIDPVP:
		return "PVP"
	case ZoneIDPeace:
		return "PEACE"
	case ZoneIDSiege:
		return "SIEGE"
	case ZoneIDTown:
		return "TOWN"
	case ZoneIDJail:
		return "JAIL"
	case ZoneIDNoStore:
		return "NO_STORE"
	default:
		return "UNKNOWN"
	}
}

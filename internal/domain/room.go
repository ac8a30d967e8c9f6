package domain

// Room represents a bookable room of a lodge site
type Room struct {
	ID                  string
	SiteID              int64
	Name                string
	Capacity            int
	IsActive            bool
	SortOrder           int
	BedConfigurationIDs []int64
}

// HasBedConfiguration returns true if the room offers the given bed configuration
func (r *Room) HasBedConfiguration(id int64) bool {
	for _, bc := range r.BedConfigurationIDs {
		if bc == id {
			return true
		}
	}
	return false
}

// RoomFilter filters the room inventory
type RoomFilter struct {
	IDs                []string // empty = any room
	SiteID             *int64
	BedConfigurationID *int64
	IncludeInactive    bool
}

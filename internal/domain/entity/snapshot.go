package entity

// Snapshot is the complete user data set: what a backup carries and a restore replaces.
type Snapshot struct {
	Orders    []Order
	Catalogs  []ProductCatalog
	Platforms []Platform
}

// Equal compares the three collections element by element, in order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.Orders) != len(other.Orders) ||
		len(s.Catalogs) != len(other.Catalogs) ||
		len(s.Platforms) != len(other.Platforms) {
		return false
	}
	for i := range s.Orders {
		if !s.Orders[i].Equal(other.Orders[i]) {
			return false
		}
	}
	for i := range s.Catalogs {
		if !s.Catalogs[i].Equal(other.Catalogs[i]) {
			return false
		}
	}
	for i := range s.Platforms {
		if s.Platforms[i] != other.Platforms[i] {
			return false
		}
	}

	return true
}

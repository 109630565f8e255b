package domain

type CaravanStatus string

const (
	CaravanStatusAvailable   CaravanStatus = "available"
	CaravanStatusReserved    CaravanStatus = "reserved"
	CaravanStatusMaintenance CaravanStatus = "maintenance"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Caravan struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	HostID    string        `json:"host_id"`
	Capacity  int           `json:"capacity"`
	Amenities []string      `json:"amenities"`
	Photos    []string      `json:"photos"`
	Location  Coordinate    `json:"location"`
	Status    CaravanStatus `json:"status"`
	DailyRate float64       `json:"daily_rate"`
	LikedBy   []string      `json:"liked_by"`
}

func (c *Caravan) Likes() int {
	return len(c.LikedBy)
}

type CreateCaravanInput struct {
	Name      string
	HostID    string
	Capacity  int
	Amenities []string
	Photos    []string
	Location  Coordinate
	DailyRate float64
}

type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByLikes    SortKey = "likes"
	SortByPrice    SortKey = "price"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByDistance, SortByLikes, SortByPrice:
		return true
	}
	return false
}

// RankedCaravan is a caravan enriched for a single ranking request.
// Distance is nil when unknown; callers must not treat nil as zero.
type RankedCaravan struct {
	Caravan
	Distance         *float64 `json:"distance"`
	TransactionCount int      `json:"transaction_count"`
}

// CaravanDetails bundles a caravan with its host and the number of
// completed reservations across all of the host's caravans.
type CaravanDetails struct {
	Caravan      Caravan `json:"caravan"`
	Host         User    `json:"host"`
	Transactions int     `json:"transactions"`
}

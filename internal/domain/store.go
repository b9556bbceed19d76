package domain

// Store is a physical retail location.
type Store struct {
	ID       string `db:"id" json:"_id"`
	StoreID  string `db:"store_id" json:"store_id"`
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location"`
}

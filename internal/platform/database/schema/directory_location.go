package schema

// LocationTable represents the 'directory.location' table
type LocationTable struct {
	Table      string
	ID         string
	AdvocateID string
	City       string
	State      string
	Country    string
	CreatedAt  string
}

// Location is the schema definition for directory.location
var Location = LocationTable{
	Table:      "directory.location",
	ID:         "id",
	AdvocateID: "advocateid",
	City:       "city",
	State:      "state",
	Country:    "country",
	CreatedAt:  "createdat",
}

func (t LocationTable) Columns() []string {
	return []string{t.ID, t.AdvocateID, t.City, t.State, t.Country, t.CreatedAt}
}

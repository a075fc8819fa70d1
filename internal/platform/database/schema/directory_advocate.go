package schema

// AdvocateTable represents the 'directory.advocate' table
type AdvocateTable struct {
	Table             string
	ID                string
	FirstName         string
	LastName          string
	Degree            string
	YearsOfExperience string
	PhoneNumber       string
	CreatedAt         string
	UpdatedAt         string
}

// Advocate is the schema definition for directory.advocate
var Advocate = AdvocateTable{
	Table:             "directory.advocate",
	ID:                "id",
	FirstName:         "firstname",
	LastName:          "lastname",
	Degree:            "degree",
	YearsOfExperience: "yearsofexperience",
	PhoneNumber:       "phonenumber",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

func (t AdvocateTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.LastName, t.Degree, t.YearsOfExperience,
		t.PhoneNumber, t.CreatedAt, t.UpdatedAt,
	}
}

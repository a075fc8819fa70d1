package schema

// SpecialtyTable represents the 'directory.specialty' table
type SpecialtyTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// Specialty is the schema definition for directory.specialty
var Specialty = SpecialtyTable{
	Table:     "directory.specialty",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

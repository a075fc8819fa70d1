package schema

// AdvocateSpecialtyTable represents the 'directory.advocatespecialty' table
type AdvocateSpecialtyTable struct {
	Table       string
	AdvocateID  string
	SpecialtyID string
}

// AdvocateSpecialty is the schema definition for directory.advocatespecialty
var AdvocateSpecialty = AdvocateSpecialtyTable{
	Table:       "directory.advocatespecialty",
	AdvocateID:  "advocateid",
	SpecialtyID: "specialtyid",
}

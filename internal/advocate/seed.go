// Copyright (c) 2026 Advora. All rights reserved.

package advocate

// SampleAdvocates returns the bundled development dataset used by the seed
// endpoint and SEED_ON_BOOT. IDs and timestamps are assigned at insert time.
func SampleAdvocates() []*Advocate {
	return []*Advocate{
		{
			FirstName:         "Jane",
			LastName:          "Doe",
			Degree:            "MD",
			YearsOfExperience: 10,
			PhoneNumber:       5551234567,
			Specialties:       []string{"Bipolar", "LGBTQ", "Medication/Prescribing"},
			City:              "New York",
			State:             "NY",
			Country:           "United States",
		},
		{
			FirstName:         "John",
			LastName:          "Smith",
			Degree:            "PhD",
			YearsOfExperience: 8,
			PhoneNumber:       5559876543,
			Specialties:       []string{"Trauma & PTSD", "Personality disorders"},
			City:              "Los Angeles",
			State:             "CA",
			Country:           "United States",
		},
		{
			FirstName:         "Alice",
			LastName:          "Johnson",
			Degree:            "MSW",
			YearsOfExperience: 5,
			PhoneNumber:       5554567890,
			Specialties:       []string{"Anxiety", "Depression", "Relationship issues"},
			City:              "Chicago",
			State:             "IL",
			Country:           "United States",
		},
		{
			FirstName:         "Michael",
			LastName:          "Brown",
			Degree:            "MD",
			YearsOfExperience: 12,
			PhoneNumber:       5556543210,
			Specialties:       []string{"Schizophrenia and psychotic disorders", "Medication/Prescribing"},
			City:              "Houston",
			State:             "TX",
			Country:           "United States",
		},
		{
			FirstName:         "Emily",
			LastName:          "Davis",
			Degree:            "PhD",
			YearsOfExperience: 7,
			PhoneNumber:       5553216549,
			Specialties:       []string{"Eating disorders", "Obsessive-compulsive disorders"},
			City:              "Phoenix",
			State:             "AZ",
			Country:           "United States",
		},
		{
			FirstName:         "Chris",
			LastName:          "Martinez",
			Degree:            "MSW",
			YearsOfExperience: 3,
			PhoneNumber:       5557893456,
			Specialties:       []string{"Substance use/abuse", "General Mental Health"},
			City:              "Philadelphia",
			State:             "PA",
			Country:           "United States",
		},
		{
			FirstName:         "Jessica",
			LastName:          "Taylor",
			Degree:            "MD",
			YearsOfExperience: 15,
			PhoneNumber:       5556781234,
			Specialties:       []string{"Pediatrics", "Growth & parenting"},
			City:              "San Antonio",
			State:             "TX",
			Country:           "United States",
		},
		{
			FirstName:         "David",
			LastName:          "Anderson",
			Degree:            "PhD",
			YearsOfExperience: 9,
			PhoneNumber:       5554327890,
			Specialties:       []string{"Neuropsychological evaluations & testing", "Attention and Hyperactivity (ADHD)"},
			City:              "San Diego",
			State:             "CA",
			Country:           "United States",
		},
		{
			FirstName:         "Laura",
			LastName:          "Thomas",
			Degree:            "MSW",
			YearsOfExperience: 6,
			PhoneNumber:       5559873456,
			Specialties:       []string{"Grief and loss", "Life coaching"},
			City:              "Dallas",
			State:             "TX",
			Country:           "United States",
		},
		{
			FirstName:         "Daniel",
			LastName:          "Jackson",
			Degree:            "MD",
			YearsOfExperience: 20,
			PhoneNumber:       5556549873,
			Specialties:       []string{"Chronic pain", "Weight loss & nutrition"},
			City:              "San Jose",
			State:             "CA",
			Country:           "United States",
		},
	}
}

package domain

// EmergencyContact is someone to call when something goes wrong
type EmergencyContact struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// MedicalInfo holds per-member medical notes
type MedicalInfo struct {
	ID          int    `json:"id"`
	Member      string `json:"member"`
	Allergies   string `json:"allergies"`
	Medications string `json:"medications"`
	BloodType   string `json:"blood_type"`
	Notes       string `json:"notes"`
}

// EmergencyInfo is the emergency sheet shown on the profile screen
type EmergencyInfo struct {
	Contacts []EmergencyContact `json:"contacts"`
	Medical  []MedicalInfo      `json:"medical"`
}

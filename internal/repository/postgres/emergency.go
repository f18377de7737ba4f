package postgres

import (
	"database/sql"

	"familiaconnect/internal/domain"
)

// EmergencyRepo implements repository.EmergencyRepository
type EmergencyRepo struct {
	db *sql.DB
}

// NewEmergencyRepo creates a new emergency info repository
func NewEmergencyRepo(db *sql.DB) *EmergencyRepo {
	return &EmergencyRepo{db: db}
}

// ListContacts returns emergency contacts
func (r *EmergencyRepo) ListContacts() ([]domain.EmergencyContact, error) {
	rows, err := r.db.Query(`SELECT id, name, phone, relationship FROM emergency_contacts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Relationship); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// ListMedicalInfo returns medical notes for every member
func (r *EmergencyRepo) ListMedicalInfo() ([]domain.MedicalInfo, error) {
	query := `
		SELECT id, member, allergies, medications, blood_type, notes
		FROM medical_info
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var info []domain.MedicalInfo
	for rows.Next() {
		var m domain.MedicalInfo
		if err := rows.Scan(&m.ID, &m.Member, &m.Allergies, &m.Medications, &m.BloodType, &m.Notes); err != nil {
			return nil, err
		}
		info = append(info, m)
	}

	return info, rows.Err()
}

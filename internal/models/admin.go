package models

// Admin is the row shape of the admins table.
type Admin struct {
	AdminID      string `db:"admin_id"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}

package domain

// Admin is an operator allowed to edit the catalog and moderate comments.
type Admin struct {
	AdminID      string `json:"adminID"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}

package database

type ContactMessageAttrs struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress *string
	UserAgent string
}

type AdminUserAttrs struct {
	Username     string
	PasswordHash string
}

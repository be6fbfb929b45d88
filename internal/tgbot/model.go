package tgbot

type UserRole int

const (
	RoleAdmin UserRole = 1
	RoleUser  UserRole = 2
)

type User struct {
	ID       int64
	Username string
	Role     UserRole
}

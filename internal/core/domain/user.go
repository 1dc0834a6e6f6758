package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleConductor Role = "CONDUCTOR"
	RoleCollege   Role = "COLLEGE"
	RolePassenger Role = "PASSENGER"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

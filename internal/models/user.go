package models

// UserRole is the role name stored in the roles table.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

// Role ids seeded into the roles table.
const (
	RoleIDStudent = 1
	RoleIDTeacher = 2
)

// User represents an application user joined with its role name.
type User struct {
	ID       int      `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Password string   `db:"password" json:"-"`
	RoleID   int      `db:"role_id" json:"roleId"`
	Role     UserRole `db:"role_name" json:"role"`
	FullName string   `db:"full_name" json:"fullName"`
}

// Info strips the credentials from the user record.
func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Role: u.Role, FullName: u.FullName}
}

// IsTeacher reports whether the user may edit the schedule.
func (u UserInfo) IsTeacher() bool {
	return u.Role == RoleTeacher
}

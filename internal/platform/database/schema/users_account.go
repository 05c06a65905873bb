package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Bio         string
	Role        string
	IsSuperuser string
	IsConfirmed string
	CreatedAt   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	FirstName:   "firstname",
	LastName:    "lastname",
	Bio:         "bio",
	Role:        "role",
	IsSuperuser: "issuperuser",
	IsConfirmed: "isconfirmed",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.FirstName, t.LastName,
		t.Bio, t.Role, t.IsSuperuser, t.IsConfirmed, t.CreatedAt,
	}
}

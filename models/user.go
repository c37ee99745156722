package models

// User is one entry of the user directory. Password holds a bcrypt hash;
// the original app kept these in plain text, which is not reproduced here.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

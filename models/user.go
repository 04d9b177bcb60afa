package models

// User 用户模型，对应 users 表
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	CreatedAt string `json:"createdAt"`
}

package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Posts    []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

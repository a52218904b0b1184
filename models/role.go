package models

type Role string

const (
	AdminRole Role = "Admin"
	UserRole  Role = "User"
)

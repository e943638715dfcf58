package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FirstName devuelve el nombre hasta el primer espacio.
func FirstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}

package profile

import (
	"fmt"
	"strings"
)

// Profile describes the signed-in field worker.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

// Default returns the built-in profile.
func Default() Profile {
	return Profile{
		Name:        "Sondos Al-Amri",
		Email:       "sondos@example.com",
		Designation: "Field Worker",
	}
}

// FirstName is the first word of Name.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Greeting addresses the worker by first name.
func (p Profile) Greeting() string {
	if first := p.FirstName(); first != "" {
		return fmt.Sprintf("Hello, %s!", first)
	}
	return "Hello!"
}

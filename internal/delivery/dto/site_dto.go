package dto

type SiteResponse struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Links       []string    `json:"links"`
	Contact     ContactInfo `json:"contact"`
}

type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

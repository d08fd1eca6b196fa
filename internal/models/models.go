package models

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

type TransportEntry struct {
	ID            int64   `json:"id"`
	OwnerRef      string  `json:"owner_ref"`
	TransportMode string  `json:"transport_mode"`
	Distance      float64 `json:"distance"`
	Emissions     float64 `json:"emissions"`
	CreatedAt     string  `json:"created_at"`
}

type FoodEntry struct {
	ID             int64  `json:"id"`
	OwnerRef       string `json:"owner_ref"`
	DietaryPattern string `json:"dietary_pattern"`
	FoodItem       string `json:"food_item"`
	CreatedAt      string `json:"created_at"`
}

type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

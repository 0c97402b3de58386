package entities

type FarmDetails struct {
	Location string `json:"location" yaml:"location"`
	Crop     string `json:"crop" yaml:"crop"`
	Area     string `json:"area" yaml:"area"`
}

type User struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	Name         string       `json:"name"`
	Phone        string       `gorm:"index" json:"phone"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"passwordHash"`
	Role         string       `json:"role"` // farmer|admin
	FarmDetails  *FarmDetails `gorm:"serializer:json" json:"farmDetails,omitempty"`
}

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

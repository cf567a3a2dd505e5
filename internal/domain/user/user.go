package user

// Role classifies a user for authorization purposes.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePelanggan Role = "pelanggan"
)

// Placeholder profile values written at registration. The BSON field names
// keep the document shape the existing collections already use.
const (
	PlaceholderContact  = "silahkan edit profil"
	DefaultProfilePhoto = "static/img/profil/profil.png"
)

type User struct {
	ID           string `bson:"-" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password" json:"-"` // never expose hash in JSON
	Name         string `bson:"nama" json:"name"`
	Phone        string `bson:"notlp" json:"phone"`
	Address      string `bson:"alamat" json:"address"`
	ProfilePhoto string `bson:"fotoprofil" json:"profilePhoto"`
	Role         Role   `bson:"role" json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate carries the editable profile fields. Empty ProfilePhoto means
// the stored photo is left untouched.
type ProfileUpdate struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	ProfilePhoto string
}
